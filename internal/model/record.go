package model

// Record is a schema-agnostic map of one accepted submission: every answer
// field keyed by question identifier, plus system-assigned metadata. Records
// are immutable once stored; corrections require a new submission.
type Record map[string]interface{}

// Metadata keys assigned at accept time.
const (
	FieldID          = "id"          // uuid assigned on accept
	FieldSubmittedAt = "submittedAt" // UTC RFC3339 timestamp
	FieldIP          = "ip"          // best-effort client origin
	FieldFiltered    = "filtered"    // payload flag: respondent screened out
)

// SubmittedAt returns the stored submission timestamp, or "" when absent.
func (r Record) SubmittedAt() string {
	s, _ := r[FieldSubmittedAt].(string)
	return s
}

// IP returns the stored client origin, or "unknown" when absent.
func (r Record) IP() string {
	if s, ok := r[FieldIP].(string); ok && s != "" {
		return s
	}
	return "unknown"
}

// Filtered reports whether the respondent was screened out client-side.
func (r Record) Filtered() bool {
	switch v := r[FieldFiltered].(type) {
	case bool:
		return v
	case string:
		return v != "" && v != "false"
	default:
		return false
	}
}

// SubmissionInfo is the per-record entry on the stats dashboard list.
type SubmissionInfo struct {
	SubmittedAt string `json:"submittedAt"`
	IP          string `json:"ip"`
}
