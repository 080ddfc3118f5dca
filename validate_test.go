package lws_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsonlws/lws"
)

func TestValidateCleanDataBothDirections(t *testing.T) {
	schema := personSchema()
	data := lws.Object{
		"name": "Alice",
		"age":  30.0,
		"address": lws.Object{
			"city": "Springfield",
		},
	}

	report := lws.Validate(schema, data)
	assert.Equal(t, 0, report.SchemaKeyErrors)
	assert.Equal(t, 0, report.SchemaValErrors)
	assert.Equal(t, 0, report.DataKeyErrors)
	assert.Equal(t, 0, report.DataValErrors)
}

func TestValidateJoinedReportFormat(t *testing.T) {
	report := lws.Validate(personSchema(), lws.Object{"name": "Alice"})
	assert.Contains(t, report.Text, "> SCHEMA VALIDATION")
	assert.Contains(t, report.Text, "> DATA VALIDATION")

	schemaIdx := indexOf(report.Text, "> SCHEMA VALIDATION")
	dataIdx := indexOf(report.Text, "> DATA VALIDATION")
	assert.Less(t, schemaIdx, dataIdx, "schema validation must be rendered before data validation")
}

func TestValidateExtraKeyOnlyAffectsDataDirection(t *testing.T) {
	schema := lws.Obj(
		lws.Entry(lws.Key("name"), lws.NewLeaf(lws.Val("name", lws.KindText))),
	)
	data := lws.Object{"name": "Alice", "surprise": "field"}

	report := lws.Validate(schema, data)
	assert.Equal(t, 0, report.SchemaKeyErrors)
	assert.Equal(t, 1, report.DataKeyErrors)
}

func TestValidateMissingKeyOnlyAffectsSchemaDirection(t *testing.T) {
	schema := lws.Obj(
		lws.Entry(lws.Key("name"), lws.NewLeaf(lws.Val("name", lws.KindText))),
		lws.Entry(lws.Key("age"), lws.NewLeaf(lws.Val("age", lws.KindNum))),
	)
	data := lws.Object{"name": "Alice"}

	report := lws.Validate(schema, data)
	assert.Equal(t, 1, report.SchemaKeyErrors)
	assert.Equal(t, 0, report.DataKeyErrors)
}

func TestValidateMismatchGroupFoldsToSingleValueError(t *testing.T) {
	// Two candidate data keys both satisfying the same schema key's
	// name rule, neither satisfying its value rule: the fold collapses
	// the whole group to one value-error line, not two.
	schema := lws.Obj(
		lws.Entry(
			lws.Key("flag", lws.WithKeyPattern(`flag_\d+`)),
			lws.NewLeaf(lws.Val("flag", lws.KindBool, lws.WithRule(lws.LiteralBool(true)))),
		),
	)
	data := lws.Object{"flag_1": false, "flag_2": false}

	report := lws.Validate(schema, data)
	assert.Equal(t, 1, report.SchemaValErrors)
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
