package scval

import (
	"errors"
	"fmt"
)

// EncodingError is returned when a native value cannot be represented as any
// candidate wire tag. It is raised before any network call is made.
type EncodingError struct {
	// Index is the argument position, or -1 when the value is not positional.
	Index int
	// Param is the declared parameter name, if known.
	Param string
	// Hint is the expected tag at the position, if one was declared.
	Hint string
	// Reason describes why encoding failed.
	Reason string
}

func (e *EncodingError) Error() string {
	switch {
	case e.Index >= 0 && e.Param != "":
		return fmt.Sprintf("encoding error: argument %d (%s): %s", e.Index, e.Param, e.Reason)
	case e.Index >= 0:
		return fmt.Sprintf("encoding error: argument %d: %s", e.Index, e.Reason)
	default:
		return fmt.Sprintf("encoding error: %s", e.Reason)
	}
}

func newEncodingError(format string, args ...interface{}) *EncodingError {
	return &EncodingError{Index: -1, Reason: fmt.Sprintf(format, args...)}
}

// IsEncodingError returns true if err is or wraps an EncodingError.
func IsEncodingError(err error) bool {
	var target *EncodingError
	return errors.As(err, &target)
}

// at returns err annotated with a position, if it is an EncodingError.
func at(err error, index int, param string, hint Hint) error {
	var encErr *EncodingError
	if !errors.As(err, &encErr) {
		return err
	}
	annotated := *encErr
	annotated.Index = index
	annotated.Param = param
	if !hint.IsAny() {
		annotated.Hint = hint.String()
	}
	return &annotated
}
