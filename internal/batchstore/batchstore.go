// Package batchstore persists the accumulated list of normalized expenses
// between invocations, until the user submits it. Entries are append-only;
// an edit means discarding the batch and re-adding rows.
package batchstore

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"smartexpense/expense-cli/internal/fileutils"
	"smartexpense/expense-cli/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a configured logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Batch is the pending set of normalized expenses awaiting bulk submission.
type Batch struct {
	ID        string                     `yaml:"id"`
	CreatedAt time.Time                  `yaml:"created_at"`
	Entries   []models.NormalizedExpense `yaml:"entries"`
}

// Len returns the number of pending entries.
func (b *Batch) Len() int {
	return len(b.Entries)
}

// Store reads and writes the pending batch file.
type Store struct {
	filePath string
}

// NewStore creates a store backed by the given file path.
func NewStore(filePath string) *Store {
	return &Store{filePath: filePath}
}

// Load reads the pending batch. A missing file yields a fresh empty batch.
func (s *Store) Load() (*Batch, error) {
	if !fileutils.FileExists(s.filePath) {
		return newBatch(), nil
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var batch Batch
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to parse batch file: %w", err)
	}
	if batch.ID == "" {
		batch.ID = uuid.New().String()
	}

	return &batch, nil
}

// Replace discards any pending batch and starts a new one with the given
// entries. This mirrors a fresh file upload, which resets the working list.
func (s *Store) Replace(entries []models.NormalizedExpense) (*Batch, error) {
	batch := newBatch()
	batch.Entries = entries
	if err := s.save(batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// Append adds entries to the pending batch, preserving order.
func (s *Store) Append(entries ...models.NormalizedExpense) (*Batch, error) {
	batch, err := s.Load()
	if err != nil {
		return nil, err
	}

	batch.Entries = append(batch.Entries, entries...)
	if err := s.save(batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// Clear removes the pending batch, typically after a successful submission.
func (s *Store) Clear() error {
	if !fileutils.FileExists(s.filePath) {
		return nil
	}
	if err := os.Remove(s.filePath); err != nil {
		return fmt.Errorf("failed to remove batch file: %w", err)
	}
	return nil
}

func (s *Store) save(batch *Batch) error {
	data, err := yaml.Marshal(batch)
	if err != nil {
		return fmt.Errorf("failed to encode batch: %w", err)
	}

	if err := fileutils.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("failed to write batch file: %w", err)
	}

	log.WithFields(logrus.Fields{
		"batch_id": batch.ID,
		"count":    batch.Len(),
	}).Debug("Saved pending batch")
	return nil
}

func newBatch() *Batch {
	return &Batch{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
	}
}
