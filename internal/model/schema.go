package model

import "strconv"

// Demographic maps a reporting label to the answer field it tallies.
type Demographic struct {
	Label string `json:"label" yaml:"label"`
	Field string `json:"field" yaml:"field"`
}

// Schema declares the shape of one questionnaire version. It is pure
// configuration: the same Validator/Aggregator code serves any Schema value.
type Schema struct {
	GateField     string `json:"gateField" yaml:"gateField"`         // screening question, always required
	EligibleValue string `json:"eligibleValue" yaml:"eligibleValue"` // gate answer that unlocks the rest

	RequiredFields   []string `json:"requiredFields" yaml:"requiredFields"`
	MultiValueFields []string `json:"multiValueFields" yaml:"multiValueFields"`
	ScaleFields      []string `json:"scaleFields" yaml:"scaleFields"`

	ScaleMin float64 `json:"scaleMin" yaml:"scaleMin"`
	ScaleMax float64 `json:"scaleMax" yaml:"scaleMax"`

	Demographics []Demographic `json:"demographics" yaml:"demographics"`

	// ExportFields fixes the CSV column order for answer fields. Metadata
	// columns (submittedAt, ip) are always prepended by the exporter.
	ExportFields []string `json:"exportFields" yaml:"exportFields"`

	// UnansweredLabel is the tally bucket for missing demographic values.
	UnansweredLabel string `json:"unansweredLabel" yaml:"unansweredLabel"`
}

// ScaleRange returns the inclusive rating bounds, defaulting to 1-5.
func (s Schema) ScaleRange() (float64, float64) {
	if s.ScaleMin == 0 && s.ScaleMax == 0 {
		return 1, 5
	}
	return s.ScaleMin, s.ScaleMax
}

// Unanswered returns the bucket label for missing demographic values.
func (s Schema) Unanswered() string {
	if s.UnansweredLabel == "" {
		return "unanswered"
	}
	return s.UnansweredLabel
}

// DefaultSchema reproduces the museum visitor questionnaire: Q1 screening
// gate, Q2-Q6 basics, Q8-Q15 visit characteristics (Q10 multi-select),
// Q16-Q45 satisfaction scale, Q46-Q47 behavioral intent, Q48-Q49 open text.
func DefaultSchema() Schema {
	scale := make([]string, 0, 32)
	for q := 16; q <= 47; q++ {
		scale = append(scale, "Q"+strconv.Itoa(q))
	}

	export := make([]string, 0, 49)
	for q := 1; q <= 49; q++ {
		export = append(export, "Q"+strconv.Itoa(q))
	}

	return Schema{
		GateField:     "Q1",
		EligibleValue: "yes",
		RequiredFields: []string{
			"Q2", "Q3", "Q4", "Q5", "Q6",
			"Q8", "Q9", "Q11", "Q12", "Q13", "Q14", "Q15",
		},
		MultiValueFields: []string{"Q10"},
		ScaleFields:      scale,
		ScaleMin:         1,
		ScaleMax:         5,
		Demographics: []Demographic{
			{Label: "gender", Field: "Q2"},
			{Label: "residence", Field: "Q3"},
			{Label: "age", Field: "Q4"},
			{Label: "education", Field: "Q5"},
			{Label: "occupation", Field: "Q6"},
			{Label: "income", Field: "Q7"},
			{Label: "visitCount", Field: "Q8"},
			{Label: "purpose", Field: "Q9"},
		},
		ExportFields:    export,
		UnansweredLabel: "unanswered",
	}
}
