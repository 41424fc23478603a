package output

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// StatusSpinner displays an animated spinner with a status message.
// It is safe for concurrent updates and is silent when out is not a terminal.
type StatusSpinner struct {
	out      io.Writer
	enabled  bool
	frameIdx int
	message  string
	stop     chan struct{}
	done     chan struct{}
	mu       sync.Mutex
	running  bool
}

// NewStatusSpinner creates a spinner on stderr, enabled only for a TTY.
func NewStatusSpinner() *StatusSpinner {
	return &StatusSpinner{
		out:     os.Stderr,
		enabled: term.IsTerminal(int(os.Stderr.Fd())),
	}
}

// Start begins the animation with the given message.
func (s *StatusSpinner) Start(message string) {
	s.mu.Lock()
	if s.running || !s.enabled {
		s.message = message
		s.mu.Unlock()
		return
	}
	s.running = true
	s.message = message
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	s.mu.Unlock()

	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		defer close(s.done)

		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				s.render()
			}
		}
	}()
}

// Update changes the spinner message.
func (s *StatusSpinner) Update(message string) {
	s.mu.Lock()
	s.message = message
	running := s.running
	s.mu.Unlock()
	if running {
		s.render()
	}
}

// Stop stops the spinner and clears the line.
func (s *StatusSpinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stop)
	s.mu.Unlock()

	<-s.done
	fmt.Fprintf(s.out, "\r%80s\r", "")
}

func (s *StatusSpinner) render() {
	s.mu.Lock()
	msg := s.message
	idx := s.frameIdx
	s.frameIdx = (s.frameIdx + 1) % len(spinnerFrames)
	s.mu.Unlock()

	fmt.Fprintf(s.out, "\r%s %s          ", spinnerFrames[idx], msg)
}
