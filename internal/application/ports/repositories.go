package ports

import (
	"context"

	"github.com/altuslabsxyz/questline/internal/domain"
)

// SubmissionJournal persists write invocations from SUBMITTED onward so that
// timed-out transactions can be reconciled later.
type SubmissionJournal interface {
	// CreateSubmission stores a new record. Returns an already-exists error if
	// the id is taken.
	CreateSubmission(ctx context.Context, s *domain.Submission) error

	// GetSubmission returns a record by id.
	GetSubmission(ctx context.Context, id string) (*domain.Submission, error)

	// GetSubmissionByHash returns the record for a transaction hash.
	GetSubmissionByHash(ctx context.Context, hash string) (*domain.Submission, error)

	// UpdateSubmission replaces an existing record.
	UpdateSubmission(ctx context.Context, s *domain.Submission) error

	// ListSubmissions returns records matching the filter, newest first.
	ListSubmissions(ctx context.Context, filter domain.SubmissionFilter) ([]*domain.Submission, error)
}
