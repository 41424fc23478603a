package rpc

import (
	"errors"
	"fmt"

	"github.com/altuslabsxyz/questline/internal/application/ports"
)

// RPCError is returned when an RPC operation fails at the protocol level:
// a non-200 response, an undecodable body, or a JSON-RPC error object.
type RPCError struct {
	Operation string
	Message   string
	// Code is the JSON-RPC error code, zero for HTTP-level failures.
	Code int
}

func (e *RPCError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("RPC %s failed: %s (code %d)", e.Operation, e.Message, e.Code)
	}
	return fmt.Sprintf("RPC %s failed: %s", e.Operation, e.Message)
}

// NotFoundError is returned when a resource is not found.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource not found: %s", e.Resource)
}

// Unwrap lets callers match ports.ErrNotFound without importing this package.
func (e *NotFoundError) Unwrap() error { return ports.ErrNotFound }

// IsNotFound returns true if the error is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// ConnectionError is returned when connection fails.
type ConnectionError struct {
	Endpoint string
	Message  string
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to %s: %s", e.Endpoint, e.Message)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// TimeoutError is returned when an operation times out.
type TimeoutError struct {
	Operation string
	Duration  string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out after %s", e.Operation, e.Duration)
}

// IsTransport reports whether err is a connection or timeout failure, as
// opposed to an answer from the node.
func IsTransport(err error) bool {
	var connErr *ConnectionError
	var timeoutErr *TimeoutError
	return errors.As(err, &connErr) || errors.As(err, &timeoutErr)
}
