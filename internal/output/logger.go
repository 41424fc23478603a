// Package output renders CLI feedback: colored status lines, tables, and
// structured text/json/yaml documents.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger provides colored output functions for CLI feedback.
type Logger struct {
	out      io.Writer
	errOut   io.Writer
	verbose  bool
	jsonMode bool
}

// NewLogger creates a Logger writing to stdout and stderr.
func NewLogger() *Logger {
	return NewLoggerWithWriters(os.Stdout, os.Stderr)
}

// NewLoggerWithWriters creates a Logger with explicit writers.
func NewLoggerWithWriters(out, errOut io.Writer) *Logger {
	return &Logger{out: out, errOut: errOut}
}

// SetNoColor disables colored output.
func (l *Logger) SetNoColor(noColor bool) {
	color.NoColor = noColor
}

// SetVerbose enables verbose logging.
func (l *Logger) SetVerbose(verbose bool) {
	l.verbose = verbose
}

// IsVerbose reports whether debug messages are printed.
func (l *Logger) IsVerbose() bool { return l.verbose }

// SetJSONMode enables JSON output mode (suppresses text output).
func (l *Logger) SetJSONMode(jsonMode bool) {
	l.jsonMode = jsonMode
}

// Writer returns the standard output writer.
func (l *Logger) Writer() io.Writer { return l.out }

// ErrWriter returns the error output writer.
func (l *Logger) ErrWriter() io.Writer { return l.errOut }

// Info prints an informational message in default color.
func (l *Logger) Info(format string, args ...interface{}) {
	if l.jsonMode {
		return
	}
	fmt.Fprintf(l.out, format+"\n", args...)
}

// Warn prints a warning message in yellow.
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.jsonMode {
		return
	}
	color.New(color.FgYellow).Fprintf(l.errOut, "Warning: "+format+"\n", args...)
}

// Error prints an error message in red. Errors are printed in JSON mode too,
// on the error stream.
func (l *Logger) Error(format string, args ...interface{}) {
	color.New(color.FgRed).Fprintf(l.errOut, "Error: "+format+"\n", args...)
}

// Success prints a success message in green with checkmark.
func (l *Logger) Success(format string, args ...interface{}) {
	if l.jsonMode {
		return
	}
	color.New(color.FgGreen).Fprintf(l.out, "✓ "+format+"\n", args...)
}

// Debug prints a debug message if verbose mode is enabled.
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.jsonMode || !l.verbose {
		return
	}
	color.New(color.FgHiBlack).Fprintf(l.errOut, "[DEBUG] "+format+"\n", args...)
}

// Bold prints a message in bold.
func (l *Logger) Bold(format string, args ...interface{}) {
	if l.jsonMode {
		return
	}
	color.New(color.Bold).Fprintf(l.out, format+"\n", args...)
}

// Field prints an indented "label: value" line with a dim label.
func (l *Logger) Field(label string, value interface{}) {
	if l.jsonMode {
		return
	}
	fmt.Fprintf(l.out, "  %s %v\n", color.New(color.Faint).Sprintf("%-12s", label+":"), value)
}
