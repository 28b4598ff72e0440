package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/makuralymi/Questionnaire-survey/internal/model"
)

// SQLiteStore keeps one row per record with the answers as a JSON payload
// column. Same Append/ReadAll contract as FileStore; row id preserves
// insertion order.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (and if needed creates) the database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	responseTable := `
	CREATE TABLE IF NOT EXISTS responses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		record TEXT NOT NULL,
		created_at DATETIME
	);
	`
	if _, err := db.Exec(responseTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create responses table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// ReadAll returns every stored record in insertion order.
func (s *SQLiteStore) ReadAll() ([]model.Record, error) {
	rows, err := s.db.Query(`SELECT record FROM responses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query responses: %w", err)
	}
	defer rows.Close()

	records := []model.Record{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan response row: %w", err)
		}
		var rec model.Record
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("failed to decode response row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Append inserts one record and returns the updated full sequence.
func (s *SQLiteStore) Append(rec model.Record) ([]model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	_, err = s.db.Exec(`INSERT INTO responses (record, created_at) VALUES (?, ?)`,
		string(raw), time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to insert record: %w", err)
	}
	return s.ReadAll()
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
