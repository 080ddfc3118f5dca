package lws

// Value is a decoded JSON value: text | num | bool | null | list | dict.
type Value = any

// Array is the list shape of Value.
type Array = []any

// Object is the dict shape of Value: a JSON object keyed by string.
type Object = map[string]any

// SchemaChild pairs a schema-key descriptor with the sub-tree (interior) or
// leaf it guards.
type SchemaChild struct {
	Key  SchemaKey
	Node *SchemaNode
}

// SchemaNode is either an interior node, where Children holds the
// schema-key descriptors one level down, or a leaf, where Leaf holds
// the schema-value descriptor. Exactly one of the two is populated.
//
// Children is an ordered slice rather than a Go map: schema keys carry
// match rules (regexes, predicates) that are not comparable, and
// enumeration order must be stable regardless (§5 of the core spec), so a
// map would buy nothing here.
type SchemaNode struct {
	Children []SchemaChild
	Leaf     *SchemaValue
}

// NewInterior builds an interior schema node from its children, in
// enumeration order.
func NewInterior(children ...SchemaChild) *SchemaNode {
	return &SchemaNode{Children: children}
}

// NewLeaf builds a leaf schema node from a value descriptor.
func NewLeaf(v SchemaValue) *SchemaNode {
	return &SchemaNode{Leaf: &v}
}
