// internal/store/bolt.go
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/altuslabsxyz/questline/internal/application/ports"
	"github.com/altuslabsxyz/questline/internal/domain"
)

// JournalFile is the database file name inside the data directory.
const JournalFile = "journal.db"

// Bucket names
var (
	bucketSubmissions = []byte("submissions")
	bucketHashes      = []byte("submission_hashes")
	bucketMeta        = []byte("meta")

	keySchemaVersion = []byte("schema_version")
)

const schemaVersion = "1"

// BoltJournal implements ports.SubmissionJournal using BoltDB.
type BoltJournal struct {
	db *bolt.DB
}

// Open creates dataDir if needed and opens the journal inside it.
func Open(dataDir string) (*BoltJournal, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return NewBoltJournal(filepath.Join(dataDir, JournalFile))
}

// NewBoltJournal opens or creates a BoltDB-backed journal at path.
func NewBoltJournal(path string) (*BoltJournal, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketSubmissions, bucketHashes, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return tx.Bucket(bucketMeta).Put(keySchemaVersion, []byte(schemaVersion))
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltJournal{db: db}, nil
}

// Close closes the database.
func (s *BoltJournal) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *BoltJournal) Path() string {
	return s.db.Path()
}

// CreateSubmission stores a new record and indexes it by transaction hash.
func (s *BoltJournal) CreateSubmission(ctx context.Context, sub *domain.Submission) error {
	if sub.ID == "" {
		return fmt.Errorf("submission id is required")
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSubmissions)
		key := []byte(sub.ID)
		if b.Get(key) != nil {
			return &AlreadyExistsError{Resource: resourceSubmission, Name: sub.ID}
		}

		data, err := json.Marshal(sub)
		if err != nil {
			return err
		}
		if err := b.Put(key, data); err != nil {
			return err
		}
		if sub.TxHash != "" {
			return tx.Bucket(bucketHashes).Put([]byte(sub.TxHash), key)
		}
		return nil
	})
}

// GetSubmission retrieves a record by id.
func (s *BoltJournal) GetSubmission(ctx context.Context, id string) (*domain.Submission, error) {
	var sub domain.Submission
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketSubmissions).Get([]byte(id))
		if data == nil {
			return &NotFoundError{Resource: resourceSubmission, Name: id}
		}
		return json.Unmarshal(data, &sub)
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetSubmissionByHash retrieves the record for a transaction hash.
func (s *BoltJournal) GetSubmissionByHash(ctx context.Context, hash string) (*domain.Submission, error) {
	var sub domain.Submission
	err := s.db.View(func(tx *bolt.Tx) error {
		id := tx.Bucket(bucketHashes).Get([]byte(hash))
		if id == nil {
			return &NotFoundError{Resource: resourceSubmission, Name: hash}
		}
		data := tx.Bucket(bucketSubmissions).Get(id)
		if data == nil {
			return &NotFoundError{Resource: resourceSubmission, Name: hash}
		}
		return json.Unmarshal(data, &sub)
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// UpdateSubmission replaces an existing record.
func (s *BoltJournal) UpdateSubmission(ctx context.Context, sub *domain.Submission) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSubmissions)
		key := []byte(sub.ID)
		if b.Get(key) == nil {
			return &NotFoundError{Resource: resourceSubmission, Name: sub.ID}
		}

		data, err := json.Marshal(sub)
		if err != nil {
			return err
		}
		if err := b.Put(key, data); err != nil {
			return err
		}
		if sub.TxHash != "" {
			return tx.Bucket(bucketHashes).Put([]byte(sub.TxHash), key)
		}
		return nil
	})
}

// ListSubmissions returns records matching filter, newest first.
func (s *BoltJournal) ListSubmissions(ctx context.Context, filter domain.SubmissionFilter) ([]*domain.Submission, error) {
	var subs []*domain.Submission

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSubmissions).ForEach(func(k, v []byte) error {
			var sub domain.Submission
			if err := json.Unmarshal(v, &sub); err != nil {
				return err
			}
			if filter.Matches(&sub) {
				subs = append(subs, &sub)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sortNewestFirst(subs)
	return subs, nil
}

func sortNewestFirst(subs []*domain.Submission) {
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].SubmittedAt.After(subs[j].SubmittedAt)
	})
}

var _ ports.SubmissionJournal = (*BoltJournal)(nil)
