package survey

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"

	"github.com/makuralymi/Questionnaire-survey/internal/model"
	"github.com/makuralymi/Questionnaire-survey/pkg/utils"
)

// utf8BOM prefixes CSV exports so spreadsheet applications detect UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FormatJSON renders the record list verbatim as pretty-printed JSON.
func FormatJSON(records []model.Record) ([]byte, error) {
	if records == nil {
		records = []model.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode records: %w", err)
	}
	return data, nil
}

// FormatCSV renders the record set with a fixed column order: submittedAt and
// ip metadata first, then the schema's export fields. Multi-select answers
// join their members with a semicolon; missing values render as empty
// strings. Values containing commas, quotes, or newlines are quoted with
// internal quotes doubled (encoding/csv semantics).
func FormatCSV(records []model.Record, schema model.Schema) ([]byte, error) {
	header := append([]string{model.FieldSubmittedAt, model.FieldIP}, schema.ExportFields...)

	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	row := make([]string, len(header))
	for _, rec := range records {
		for i, field := range header {
			row[i] = utils.FormatValue(rec[field])
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// Format renders the record set in the requested export format, defaulting
// to CSV for anything other than json.
func Format(records []model.Record, schema model.Schema, format string) ([]byte, error) {
	if utils.NormalizeFormat(format) == "json" {
		return FormatJSON(records)
	}
	return FormatCSV(records, schema)
}
