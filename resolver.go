package lws

import "sort"

// sortedKeys returns obj's keys in lexicographic order, the enumeration
// order this package uses wherever a dict's keys must be visited
// deterministically.
func sortedKeys(obj Object) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// QuantifierAllows reports whether a schema key with quantifier q can
// accept n matching data keys.
//
// TODO: QuantPlus requires strictly more than one match, not merely one
// or more. This is the behavior the source exhibits, not the "one or
// more" a reader would expect from '+'; needs spec clarification before
// it can be safely changed.
func QuantifierAllows(q Quantifier, n int) bool {
	switch q {
	case QuantPlus:
		return n > 1
	case QuantOptional:
		return n < 2
	default: // QuantNone, QuantStar
		return true
	}
}

// ResolveDataKeys returns the data keys of obj that match key's name rule
// and whose count satisfies key's quantifier. If the quantifier rejects
// the match count, it returns nil: the caller records a key error rather
// than matching partial results.
//
// A key whose declared Type does not classify as text can never produce
// a candidate: object keys are always text, so such a key always
// resolves to nil, regardless of its rule.
func ResolveDataKeys(obj Object, key SchemaKey) []string {
	if key.Type != KindText {
		return nil
	}
	var matches []string
	for _, k := range sortedKeys(obj) {
		if MatchText(k, key.Rule) {
			matches = append(matches, k)
		}
	}
	if !QuantifierAllows(key.Quantifier, len(matches)) {
		return nil
	}
	return matches
}

// ResolveSchemaKeys returns every schema-key child of node whose name rule
// matches dataKey, unfiltered by quantifier: the data-driven walk asks
// "which schema keys permit this data key to exist", not "how many data
// keys does this schema key expect". As in ResolveDataKeys, a child whose
// key does not classify as text is never a candidate.
func ResolveSchemaKeys(node *SchemaNode, dataKey string) []SchemaChild {
	var matches []SchemaChild
	for _, child := range node.Children {
		if child.Key.Type == KindText && MatchText(dataKey, child.Key.Rule) {
			matches = append(matches, child)
		}
	}
	return matches
}
