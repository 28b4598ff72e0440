package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makuralymi/Questionnaire-survey/internal/model"
)

func testSchema() model.Schema {
	return model.Schema{
		GateField:        "visited",
		EligibleValue:    "yes",
		RequiredFields:   []string{"gender", "age"},
		MultiValueFields: []string{"channels"},
		ScaleFields:      []string{"S1", "S2"},
		ScaleMin:         1,
		ScaleMax:         5,
		Demographics: []model.Demographic{
			{Label: "gender", Field: "gender"},
			{Label: "age", Field: "age"},
		},
		ExportFields:    []string{"visited", "gender", "age", "channels", "S1", "S2"},
		UnansweredLabel: "unanswered",
	}
}

func validPayload() model.Record {
	return model.Record{
		"visited":  "yes",
		"gender":   "female",
		"age":      "25-34",
		"channels": []interface{}{"social media", "friends"},
		"S1":       float64(4),
		"S2":       float64(5),
	}
}

func TestValidateAcceptsCompletePayload(t *testing.T) {
	errs := Validate(validPayload(), testSchema())
	assert.Empty(t, errs)
}

func TestValidateMissingGateFailsFast(t *testing.T) {
	// No other rule runs: a payload missing everything still yields exactly
	// one error, naming the gate question.
	errs := Validate(model.Record{"S1": float64(99)}, testSchema())
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "visited")
}

func TestValidateIneligibleGateSucceedsFast(t *testing.T) {
	// Screened-out respondents only answer the gate question.
	errs := Validate(model.Record{"visited": "no"}, testSchema())
	assert.Empty(t, errs)
}

func TestValidateFilteredFlagBypassesChecks(t *testing.T) {
	errs := Validate(model.Record{"visited": "yes", "filtered": true}, testSchema())
	assert.Empty(t, errs)
}

func TestValidateAccumulatesErrors(t *testing.T) {
	payload := model.Record{
		"visited":  "yes",
		"gender":   "",                // blank string counts as missing
		"channels": []interface{}{},   // empty multi-select
		"S1":       "6",               // out of range
		"S2":       "not a number",
	}
	errs := Validate(payload, testSchema())

	// age missing, gender blank, channels empty, S1 and S2 invalid
	require.Len(t, errs, 5)
	joined := ""
	for _, e := range errs {
		joined += e + "\n"
	}
	assert.Contains(t, joined, "gender")
	assert.Contains(t, joined, "age")
	assert.Contains(t, joined, "channels")
	assert.Contains(t, joined, "S1")
	assert.Contains(t, joined, "S2")
}

func TestValidateScaleOutOfRangeNamesFieldAndRange(t *testing.T) {
	payload := validPayload()
	payload["S1"] = "6"
	errs := Validate(payload, testSchema())
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "S1")
	assert.Contains(t, errs[0], "between 1 and 5")
}

func TestValidateMissingScaleAnswerIsAnError(t *testing.T) {
	payload := validPayload()
	delete(payload, "S2")
	errs := Validate(payload, testSchema())
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "S2")
}

func TestValidateScalarMultiSelectCoerces(t *testing.T) {
	// A single selected option may arrive as a bare string; the canonical
	// representation is a one-element set.
	payload := validPayload()
	payload["channels"] = "social media"
	assert.Empty(t, Validate(payload, testSchema()))
}

func TestEligible(t *testing.T) {
	schema := testSchema()
	assert.True(t, Eligible(model.Record{"visited": "yes"}, schema))
	assert.False(t, Eligible(model.Record{"visited": "no"}, schema))
	assert.False(t, Eligible(model.Record{"visited": "yes", "filtered": true}, schema))
	assert.False(t, Eligible(model.Record{}, schema))
}
