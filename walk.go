package lws

// Direction selects which side of the tree pair drives the walk: the
// schema (is every schema key/value present in the data?) or the data
// (is every data key/value permitted by the schema?).
type Direction int

const (
	SchemaDriven Direction = iota
	DataDriven
)

// validLeaf reports whether val matches a schema-value descriptor: its
// runtime kind must classify as desc.Type, and its content must satisfy
// desc.Rule under that kind's matcher.
func validLeaf(desc SchemaValue, val Value) bool {
	if ClassifyValue(val) != desc.Type {
		return false
	}
	switch desc.Type {
	case KindText:
		return MatchText(val.(string), desc.Rule)
	case KindNum:
		return MatchNum(toNumOrZero(val), desc.Rule)
	case KindBool:
		return MatchBool(val.(bool), desc.Rule)
	case KindList:
		return MatchList(val.(Array), desc.Rule)
	case KindNull:
		return MatchNull(desc.Rule)
	default:
		return false
	}
}

func toNumOrZero(val Value) float64 {
	f, _ := toFloat(val)
	return f
}

type walkFrame struct {
	parent EdgeParent
	node   *SchemaNode
	data   Object
}

// walkSchemaDriven asks, starting from root, whether every schema key and
// value is satisfied somewhere in data. A schema key that matches no data
// key, or whose quantifier rejects its match count, is recorded as a key
// error and is not descended into; a matched value that fails its
// descriptor's rule is recorded as a value error.
func walkSchemaDriven(root *SchemaNode, data Value) *Graph {
	g := newGraph()
	rootObj, _ := data.(Object)
	stack := []walkFrame{{parent: EdgeParent{SchemaName: "root", DataName: "root"}, node: root, data: rootObj}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, child := range f.node.Children {
			key := child.Key
			dataKeys := ResolveDataKeys(f.data, key)
			if dataKeys == nil {
				g.Add(f.parent, key.Name, EdgeParent{}, KeyErrLabel)
				continue
			}
			for _, dk := range dataKeys {
				dv := f.data[dk]
				if child.Node.Leaf != nil {
					if validLeaf(*child.Node.Leaf, dv) {
						g.Add(f.parent, key.Name, EdgeParent{}, DataLabel(dv))
					} else {
						g.Add(f.parent, key.Name, EdgeParent{}, ValErrLabel)
					}
					continue
				}
				dvObj, ok := dv.(Object)
				if !ok {
					g.Add(f.parent, key.Name, EdgeParent{}, ValErrLabel)
					continue
				}
				childParent := EdgeParent{SchemaName: key.Name, DataName: dk}
				g.Add(f.parent, key.Name, childParent, DataLabel(dk))
				stack = append(stack, walkFrame{
					parent: childParent,
					node:   child.Node,
					data:   dvObj,
				})
			}
		}
	}
	return g
}

// walkDataDriven asks, starting from root, whether every key and value
// present in data is permitted by the schema. A data key with no
// matching schema key is a key error; a matched value failing the
// schema-value descriptor's rule is a value error.
//
// On a successful leaf match, the edge is labeled with the schema-value
// descriptor that accepted it, not the data value itself. This is
// asymmetric with the schema-driven walk, and a preserved behavior of
// the walker this package descends from rather than an inconsistency
// to fix.
func walkDataDriven(root *SchemaNode, data Value) *Graph {
	g := newGraph()
	rootObj, _ := data.(Object)
	stack := []walkFrame{{parent: EdgeParent{SchemaName: "root", DataName: "root"}, node: root, data: rootObj}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, dk := range sortedKeys(f.data) {
			matches := ResolveSchemaKeys(f.node, dk)
			if len(matches) == 0 {
				g.Add(f.parent, dk, EdgeParent{}, KeyErrLabel)
				continue
			}
			dv := f.data[dk]

			for _, child := range matches {
				if child.Node.Leaf != nil {
					if validLeaf(*child.Node.Leaf, dv) {
						g.Add(f.parent, dk, EdgeParent{}, DataLabel(*child.Node.Leaf))
					} else {
						g.Add(f.parent, dk, EdgeParent{}, ValErrLabel)
					}
					continue
				}

				dvObj, ok := dv.(Object)
				if !ok {
					g.Add(f.parent, dk, EdgeParent{}, ValErrLabel)
					continue
				}
				childParent := EdgeParent{SchemaName: child.Key.Name, DataName: dk}
				g.Add(f.parent, dk, childParent, DataLabel(child.Key.Name))
				stack = append(stack, walkFrame{
					parent: childParent,
					node:   child.Node,
					data:   dvObj,
				})
			}
		}
	}
	return g
}

// Walk runs a single-direction traversal of schema against data and
// returns the report graph it produces.
func Walk(schema *SchemaNode, data Value, dir Direction) *Graph {
	if dir == DataDriven {
		return walkDataDriven(schema, data)
	}
	return walkSchemaDriven(schema, data)
}
