package survey

import (
	"math"
	"time"

	"github.com/makuralymi/Questionnaire-survey/internal/model"
	"github.com/makuralymi/Questionnaire-survey/pkg/utils"
)

// BuildStats computes an Aggregation Result over the given record set. Counts
// cover every record; demographic tallies and scale averages cover only the
// gate-eligible subset. The result is always recomputable from the store and
// never a source of truth on its own.
func BuildStats(records []model.Record, schema model.Schema) *model.Stats {
	valid := make([]model.Record, 0, len(records))
	for _, rec := range records {
		if Eligible(rec, schema) {
			valid = append(valid, rec)
		}
	}

	demographics := make(map[string]map[string]int, len(schema.Demographics))
	for _, d := range schema.Demographics {
		demographics[d.Label] = tallyByField(valid, d.Field, schema.Unanswered())
	}

	scaleStats := make(map[string]model.ScaleStat, len(schema.ScaleFields))
	for _, field := range schema.ScaleFields {
		scaleStats[field] = scaleStat(valid, field)
	}

	return &model.Stats{
		Count:        len(records),
		ValidCount:   len(valid),
		Demographics: demographics,
		ScaleStats:   scaleStats,
		LastUpdated:  time.Now().UTC(),
	}
}

// tallyByField counts occurrences of each observed value; records with a
// missing value land in the unanswered bucket instead of being dropped.
func tallyByField(records []model.Record, field, unanswered string) map[string]int {
	tally := make(map[string]int)
	for _, rec := range records {
		key := utils.FormatValue(rec[field])
		if key == "" {
			key = unanswered
		}
		tally[key]++
	}
	return tally
}

// scaleStat averages one rating question over the records that answered it
// with a finite number. A malformed stored value counts as unanswered, never
// as a failure. Average is nil when nobody answered.
func scaleStat(records []model.Record, field string) model.ScaleStat {
	var sum float64
	answered := 0
	for _, rec := range records {
		if v, ok := utils.Numeric(rec[field]); ok {
			sum += v
			answered++
		}
	}
	if answered == 0 {
		return model.ScaleStat{}
	}
	avg := math.Round(sum/float64(answered)*100) / 100
	return model.ScaleStat{Average: &avg, Answered: answered}
}

// FilterByDate keeps records whose submission timestamp falls within
// [start, end] inclusive. Zero-value boundaries are open ends. Records with
// an unparseable timestamp are excluded from any bounded query.
func FilterByDate(records []model.Record, start, end time.Time) []model.Record {
	if start.IsZero() && end.IsZero() {
		return records
	}
	out := make([]model.Record, 0, len(records))
	for _, rec := range records {
		t, err := time.Parse(time.RFC3339, rec.SubmittedAt())
		if err != nil {
			continue
		}
		if !start.IsZero() && t.Before(start) {
			continue
		}
		if !end.IsZero() && t.After(end) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// RecentSubmissions lists up to limit {submittedAt, ip} pairs, newest first.
func RecentSubmissions(records []model.Record, limit int) []model.SubmissionInfo {
	out := make([]model.SubmissionInfo, 0, limit)
	for i := len(records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, model.SubmissionInfo{
			SubmittedAt: records[i].SubmittedAt(),
			IP:          records[i].IP(),
		})
	}
	return out
}
