package lws

import "fmt"

// Report is the outcome of validating a schema against a data document in
// both directions: per-direction error tallies and the combined,
// human-readable report text.
type Report struct {
	SchemaKeyErrors int
	SchemaValErrors int
	DataKeyErrors   int
	DataValErrors   int
	Text            string
}

// Validate walks schema against data in both directions and joins the
// two rendered reports into one document, schema validation first.
func Validate(schema *SchemaNode, data Value) Report {
	return ValidateWith(schema, data, DefaultConfig())
}

// ValidateWith is Validate with an explicit rendering Config.
func ValidateWith(schema *SchemaNode, data Value, cfg Config) Report {
	schemaGraph := Walk(schema, data, SchemaDriven)
	dataGraph := Walk(schema, data, DataDriven)

	skErrs, svErrs, schemaText := Render(schemaGraph, cfg)
	dkErrs, dvErrs, dataText := Render(dataGraph, cfg)

	text := fmt.Sprintf("\n> SCHEMA VALIDATION\n\n%s\n\n\n> DATA VALIDATION\n\n%s\n", schemaText, dataText)

	return Report{
		SchemaKeyErrors: skErrs,
		SchemaValErrors: svErrs,
		DataKeyErrors:   dkErrs,
		DataValErrors:   dvErrs,
		Text:            text,
	}
}
