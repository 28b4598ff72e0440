package survey

import (
	"fmt"

	"github.com/makuralymi/Questionnaire-survey/internal/model"
	"github.com/makuralymi/Questionnaire-survey/pkg/utils"
)

// Validate checks a submission payload against the schema and returns the
// accumulated error messages; an empty slice means the payload is accepted.
//
// The screening gate is asymmetric on purpose: a missing gate answer fails
// fast with a single error, an ineligible gate answer succeeds fast with no
// further checks (skip-logic: screened-out respondents only answer the gate
// question). Every other rule is exhaustive.
func Validate(payload model.Record, schema model.Schema) []string {
	errors := []string{}

	if utils.IsBlank(payload[schema.GateField]) {
		errors = append(errors, fmt.Sprintf("missing screening question %s", schema.GateField))
		return errors
	}

	if !Eligible(payload, schema) {
		return errors
	}

	for _, field := range schema.RequiredFields {
		if utils.IsBlank(payload[field]) {
			errors = append(errors, fmt.Sprintf("missing required field: %s", field))
		}
	}

	for _, field := range schema.MultiValueFields {
		if len(utils.StringSet(payload[field])) == 0 {
			errors = append(errors, fmt.Sprintf("missing required field: %s (select at least one option)", field))
		}
	}

	min, max := schema.ScaleRange()
	for _, field := range schema.ScaleFields {
		v, ok := utils.Numeric(payload[field])
		if !ok || v < min || v > max {
			errors = append(errors, fmt.Sprintf("invalid rating for %s: must be a number between %g and %g", field, min, max))
		}
	}

	return errors
}

// Eligible reports whether a record passed the screening gate and was not
// flagged as filtered out. Only eligible records enter demographic tallies
// and scale averages.
func Eligible(rec model.Record, schema model.Schema) bool {
	gate, _ := rec[schema.GateField].(string)
	return gate == schema.EligibleValue && !rec.Filtered()
}
