package survey

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makuralymi/Questionnaire-survey/internal/model"
)

func TestFormatCSVLayout(t *testing.T) {
	schema := testSchema()
	records := []model.Record{
		{
			model.FieldSubmittedAt: "2025-03-01T08:00:00Z",
			model.FieldIP:          "203.0.113.7",
			"visited":              "yes",
			"gender":               "female",
			"channels":             []interface{}{"social media", "friends"},
			"S1":                   float64(5),
		},
	}

	data, err := FormatCSV(records, schema)
	require.NoError(t, err)

	// BOM prefix for spreadsheet UTF-8 detection.
	require.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))

	r := csv.NewReader(bytes.NewReader(data[3:]))
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"submittedAt", "ip", "visited", "gender", "age", "channels", "S1", "S2"}, rows[0])
	assert.Equal(t, "2025-03-01T08:00:00Z", rows[1][0])
	assert.Equal(t, "social media;friends", rows[1][5]) // multi-select joined by semicolon
	assert.Equal(t, "5", rows[1][6])                    // numbers without trailing zeros
	assert.Equal(t, "", rows[1][4])                     // missing value renders empty, not "null"
}

func TestFormatCSVEscapesDelimiters(t *testing.T) {
	schema := testSchema()
	tricky := `said "hello", then left` + "\nsecond line"
	records := []model.Record{{"visited": "yes", "gender": tricky}}

	data, err := FormatCSV(records, schema)
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(data[3:]))
	rows, err := r.ReadAll()
	require.NoError(t, err)

	// Round-trip: the value survives escape/unescape intact.
	assert.Equal(t, tricky, rows[1][3])
}

func TestFormatJSONVerbatimRecordList(t *testing.T) {
	records := []model.Record{{"visited": "yes", "S1": float64(4)}}
	data, err := FormatJSON(records)
	require.NoError(t, err)

	var decoded []model.Record
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "yes", decoded[0]["visited"])

	// Pretty-printed output.
	assert.Contains(t, string(data), "\n  ")
}

func TestFormatJSONEmptyStoreIsEmptyArray(t *testing.T) {
	data, err := FormatJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestFormatDefaultsToCSV(t *testing.T) {
	data, err := Format(nil, testSchema(), "spreadsheet")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))

	data, err = Format(nil, testSchema(), "json")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
