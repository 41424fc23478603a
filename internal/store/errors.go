// internal/store/errors.go
package store

import (
	"errors"
	"fmt"

	"github.com/altuslabsxyz/questline/internal/application/ports"
)

// Sentinel errors for simple checks. ErrNotFound is the ports sentinel so
// callers need not import this package to detect a missing record.
var (
	ErrNotFound      = ports.ErrNotFound
	ErrAlreadyExists = errors.New("resource already exists")
)

// NotFoundError is returned when a record is not found.
type NotFoundError struct {
	Resource string
	Name     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Name)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// IsNotFound returns true if err is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// AlreadyExistsError is returned when creating a record that already exists.
type AlreadyExistsError struct {
	Resource string
	Name     string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Resource, e.Name)
}

func (e *AlreadyExistsError) Unwrap() error { return ErrAlreadyExists }

// IsAlreadyExists returns true if err is or wraps an AlreadyExistsError.
func IsAlreadyExists(err error) bool {
	var target *AlreadyExistsError
	return errors.As(err, &target)
}

const resourceSubmission = "submission"
