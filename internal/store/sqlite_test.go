package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makuralymi/Questionnaire-survey/internal/model"
)

func TestSQLiteStoreAppendAndReadAll(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "responses.db"))
	require.NoError(t, err)
	defer s.Close()

	records, err := s.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, records)

	first := model.Record{"visited": "yes", "gender": "male"}
	updated, err := s.Append(first)
	require.NoError(t, err)
	require.Len(t, updated, 1)

	second := model.Record{"visited": "no"}
	updated, err = s.Append(second)
	require.NoError(t, err)
	require.Len(t, updated, 2)

	// Insertion order preserved across a fresh read.
	records, err = s.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "yes", records[0]["visited"])
	assert.Equal(t, "no", records[1]["visited"])
}
