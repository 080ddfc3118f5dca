package schemaload

import "errors"

var (
	// ErrSchemaRead is returned when the schema file cannot be read.
	ErrSchemaRead = errors.New("schema: read failed")

	// ErrSchemaParse is returned when the schema document does not decode
	// into the wire-format node shape.
	ErrSchemaParse = errors.New("schema: parse failed")
)
