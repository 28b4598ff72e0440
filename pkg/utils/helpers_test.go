package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumeric(t *testing.T) {
	v, ok := Numeric(float64(4))
	assert.True(t, ok)
	assert.Equal(t, 4.0, v)

	// Ratings arrive as strings from some form clients.
	v, ok = Numeric(" 3.5 ")
	assert.True(t, ok)
	assert.Equal(t, 3.5, v)

	_, ok = Numeric("strongly agree")
	assert.False(t, ok)
	_, ok = Numeric(nil)
	assert.False(t, ok)
	_, ok = Numeric([]interface{}{1})
	assert.False(t, ok)
}

func TestStringSet(t *testing.T) {
	assert.Equal(t, []string{"a"}, StringSet("a"))
	assert.Equal(t, []string{"a", "b"}, StringSet([]interface{}{"a", "b"}))
	assert.Nil(t, StringSet(""))
	assert.Nil(t, StringSet([]interface{}{}))
	assert.Nil(t, StringSet([]interface{}{"", "  "}))
	assert.Nil(t, StringSet(float64(3)))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(nil))
	assert.True(t, IsBlank("   "))
	assert.True(t, IsBlank([]interface{}{}))
	assert.False(t, IsBlank("yes"))
	assert.False(t, IsBlank(float64(0))) // a zero rating is an answer
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", FormatValue(nil))
	assert.Equal(t, "5", FormatValue(float64(5)))
	assert.Equal(t, "3.5", FormatValue(3.5))
	assert.Equal(t, "a;b", FormatValue([]interface{}{"a", "b"}))
	assert.Equal(t, "plain", FormatValue("plain"))
}

func TestParseDateBound(t *testing.T) {
	start, err := ParseDateBound("2025-03-02", false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), start)

	end, err := ParseDateBound("2025-03-02", true)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 2, 23, 59, 59, 0, time.UTC), end)

	_, err = ParseDateBound("02/03/2025", false)
	assert.Error(t, err)
}

func TestExportFileName(t *testing.T) {
	at := time.Date(2025, 3, 2, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "survey-data-2025-03-02.csv", ExportFileName("csv", at))
	assert.Equal(t, "survey-data-2025-03-02.json", ExportFileName("json", at))
	// Unknown formats fall back to csv.
	assert.Equal(t, "survey-data-2025-03-02.csv", ExportFileName("xlsx", at))
}
