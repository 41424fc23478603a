// internal/store/memory.go
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/altuslabsxyz/questline/internal/application/ports"
	"github.com/altuslabsxyz/questline/internal/domain"
)

// MemoryJournal is an in-memory journal, used when no data directory is
// configured and in tests.
type MemoryJournal struct {
	submissions map[string]*domain.Submission
	hashes      map[string]string
	mu          sync.RWMutex
}

// NewMemoryJournal creates an empty in-memory journal.
func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{
		submissions: make(map[string]*domain.Submission),
		hashes:      make(map[string]string),
	}
}

// CreateSubmission stores a copy of sub.
func (m *MemoryJournal) CreateSubmission(ctx context.Context, sub *domain.Submission) error {
	if sub.ID == "" {
		return fmt.Errorf("submission id is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.submissions[sub.ID]; exists {
		return &AlreadyExistsError{Resource: resourceSubmission, Name: sub.ID}
	}
	cp := *sub
	m.submissions[sub.ID] = &cp
	if sub.TxHash != "" {
		m.hashes[sub.TxHash] = sub.ID
	}
	return nil
}

// GetSubmission returns a copy of the record with id.
func (m *MemoryJournal) GetSubmission(ctx context.Context, id string) (*domain.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sub, ok := m.submissions[id]
	if !ok {
		return nil, &NotFoundError{Resource: resourceSubmission, Name: id}
	}
	cp := *sub
	return &cp, nil
}

// GetSubmissionByHash returns a copy of the record for hash.
func (m *MemoryJournal) GetSubmissionByHash(ctx context.Context, hash string) (*domain.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.hashes[hash]
	if !ok {
		return nil, &NotFoundError{Resource: resourceSubmission, Name: hash}
	}
	cp := *m.submissions[id]
	return &cp, nil
}

// UpdateSubmission replaces an existing record.
func (m *MemoryJournal) UpdateSubmission(ctx context.Context, sub *domain.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.submissions[sub.ID]; !exists {
		return &NotFoundError{Resource: resourceSubmission, Name: sub.ID}
	}
	cp := *sub
	m.submissions[sub.ID] = &cp
	if sub.TxHash != "" {
		m.hashes[sub.TxHash] = sub.ID
	}
	return nil
}

// ListSubmissions returns copies of matching records, newest first.
func (m *MemoryJournal) ListSubmissions(ctx context.Context, filter domain.SubmissionFilter) ([]*domain.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var subs []*domain.Submission
	for _, sub := range m.submissions {
		if filter.Matches(sub) {
			cp := *sub
			subs = append(subs, &cp)
		}
	}
	sortNewestFirst(subs)
	return subs, nil
}

var _ ports.SubmissionJournal = (*MemoryJournal)(nil)
