package lws

import "regexp"

// KeyOption configures a SchemaKey built by Key.
type KeyOption func(*SchemaKey)

// WithKeyPattern sets the key's name-matching rule to a regex.
func WithKeyPattern(pattern string) KeyOption {
	return func(k *SchemaKey) { k.Rule = MustRegex(pattern) }
}

// WithKeyPredicate sets the key's name-matching rule to a predicate.
func WithKeyPredicate(fn func(Value) bool) KeyOption {
	return func(k *SchemaKey) { k.Rule = Predicate(fn) }
}

// WithQuantifier sets the key's repetition quantifier.
func WithQuantifier(q Quantifier) KeyOption {
	return func(k *SchemaKey) { k.Quantifier = q }
}

// Key builds a schema-key descriptor matching the literal name by default.
//
// A key only ever resolves against data keys when its Type classifies as
// text. Object keys are always text in JSON, so Key always sets Type to
// KindText; WithKeyPattern/WithKeyPredicate are the supported ways to
// match a dynamic family of key names instead of one literal name.
//
// This literal-match default is a DSL convenience and differs from the
// wire format's own default (an unconstrained ".*", see ParseKey): most
// callers building a schema by hand want "this exact key", and would
// otherwise need to repeat the name as a quoted regex on every entry.
func Key(name string, opts ...KeyOption) SchemaKey {
	k := SchemaKey{Name: name, Type: KindText, Rule: MustRegex(regexp.QuoteMeta(name)), Quantifier: QuantNone}
	for _, opt := range opts {
		opt(&k)
	}
	return k
}

// ValOption configures a SchemaValue built by Val.
type ValOption func(*SchemaValue)

// WithRule overrides the value's default match rule.
func WithRule(rule Rule) ValOption {
	return func(v *SchemaValue) { v.Rule = rule }
}

// Val builds a schema-value descriptor.
func Val(name string, kind Kind, opts ...ValOption) SchemaValue {
	v := SchemaValue{Name: name, Type: kind, Rule: defaultRule(kind)}
	for _, opt := range opts {
		opt(&v)
	}
	return v
}

// KeyNode pairs a schema key with the node it guards, for use with Obj.
type KeyNode struct {
	Key  SchemaKey
	Node *SchemaNode
}

// Entry builds a KeyNode pair.
func Entry(key SchemaKey, node *SchemaNode) KeyNode {
	return KeyNode{Key: key, Node: node}
}

// Obj builds an interior schema node from a set of key/node pairs.
func Obj(entries ...KeyNode) *SchemaNode {
	children := make([]SchemaChild, len(entries))
	for i, e := range entries {
		children[i] = SchemaChild{Key: e.Key, Node: e.Node}
	}
	return &SchemaNode{Children: children}
}
