package model

import "time"

// ScaleStat holds the aggregate for one scale question. Average is nil when
// zero respondents answered, never zero.
type ScaleStat struct {
	Average  *float64 `json:"average"`
	Answered int      `json:"answered"`
}

// Stats is an Aggregation Result: derived, recomputable at any time from a
// record set, never an independent source of truth.
type Stats struct {
	Count        int                       `json:"count"`      // all records, ineligible included
	ValidCount   int                       `json:"validCount"` // gate-eligible, not filtered
	Demographics map[string]map[string]int `json:"demographics"`
	ScaleStats   map[string]ScaleStat      `json:"scaleStats"`
	LastUpdated  time.Time                 `json:"lastUpdated"`
}
