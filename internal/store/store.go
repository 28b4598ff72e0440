package store

import (
	"fmt"

	"github.com/makuralymi/Questionnaire-survey/internal/model"
)

// Store is the durable append-only record collection. Append is logically
// read-all, add one, write-all; both backends serialize it with a mutex, so a
// single process is the one logical writer. Reads may run concurrently and
// tolerate slight staleness.
type Store interface {
	// Append adds the record to the end of the durable sequence and returns
	// the updated full sequence.
	Append(rec model.Record) ([]model.Record, error)

	// ReadAll returns every stored record in insertion order.
	ReadAll() ([]model.Record, error)
}

// Open creates the configured backend: "file" (default) or "sqlite".
func Open(backend, path string) (Store, error) {
	switch backend {
	case "", "file":
		return NewFileStore(path)
	case "sqlite":
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown store backend: %s", backend)
	}
}
