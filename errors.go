package lws

import "errors"

// === Schema Descriptor Errors ===
// These are raised by the Schema Node Parser (ParseKey, ParseValue) when a
// decoded wire-format tuple cannot be turned into a descriptor. They are
// runtime errors, distinct from the key/value validation outcomes a
// completed walk records in its report.
var (
	// ErrMalformedDescriptor is returned when a key or value tuple has the
	// wrong arity, or a positional slot has the wrong shape.
	ErrMalformedDescriptor = errors.New("malformed schema descriptor")

	// ErrUnrecognizedType is returned when a descriptor's type slot does not
	// name one of the classified kinds.
	ErrUnrecognizedType = errors.New("unrecognized schema type")

	// ErrUnrecognizedQuantifier is returned when a key descriptor's
	// quantifier slot is not one of "", "?", "+", "*".
	ErrUnrecognizedQuantifier = errors.New("unrecognized quantifier")

	// ErrInvalidRulePattern is returned when a text rule does not compile
	// as a regular expression.
	ErrInvalidRulePattern = errors.New("invalid rule pattern")
)
