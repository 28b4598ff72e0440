package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/makuralymi/Questionnaire-survey/internal/model"
)

// FileStore persists the full record sequence as one pretty-printed JSON
// array. Every append rewrites the whole file via a temp file and rename, so
// each write is atomic and a reload reproduces the same logical record set.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore opens the store at path, initializing the backing file to an
// empty sequence if it doesn't exist yet.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}
	if err := s.ensure(); err != nil {
		return nil, err
	}
	return s, nil
}

// ensure lazily initializes the data directory and file. Idempotent.
func (s *FileStore) ensure() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if err := os.WriteFile(s.path, []byte("[]"), 0644); err != nil {
			return fmt.Errorf("failed to initialize store file: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("failed to stat store file: %w", err)
	}
	return nil
}

// ReadAll returns every stored record in insertion order.
func (s *FileStore) ReadAll() ([]model.Record, error) {
	if err := s.ensure(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}
	if len(raw) == 0 {
		return []model.Record{}, nil
	}
	var records []model.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode store file: %w", err)
	}
	if records == nil {
		records = []model.Record{}
	}
	return records, nil
}

// Append adds one record and rewrites the whole file. Not safe under
// concurrent writers in separate processes; in-process appends are serialized
// by the mutex.
func (s *FileStore) Append(rec model.Record) ([]model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.ReadAll()
	if err != nil {
		return nil, err
	}
	records = append(records, rec)

	if err := s.writeAll(records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *FileStore) writeAll(records []model.Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}
