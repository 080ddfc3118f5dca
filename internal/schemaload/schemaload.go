// Package schemaload decodes a schema tree from its wire format: a YAML
// (or, since YAML is a JSON superset, plain JSON) document of nested
// nodes, each either an interior node with a key and further children,
// or a leaf node with a key and a value descriptor.
package schemaload

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/jsonlws/lws"
)

type wireNode struct {
	Key      []any      `yaml:"key,omitempty"`
	Value    []any      `yaml:"value,omitempty"`
	Children []wireNode `yaml:"children,omitempty"`
}

func buildNode(w wireNode) (*lws.SchemaNode, error) {
	if w.Value != nil {
		sv, err := lws.ParseValue(lws.RawValue(w.Value))
		if err != nil {
			return nil, err
		}
		return lws.NewLeaf(sv), nil
	}

	children := make([]lws.SchemaChild, 0, len(w.Children))
	for _, c := range w.Children {
		if c.Key == nil {
			return nil, fmt.Errorf("%w: child node missing key", ErrSchemaParse)
		}
		key, err := lws.ParseKey(lws.RawKey(c.Key))
		if err != nil {
			return nil, err
		}
		node, err := buildNode(c)
		if err != nil {
			return nil, err
		}
		children = append(children, lws.SchemaChild{Key: key, Node: node})
	}
	return lws.NewInterior(children...), nil
}

// Decode parses a schema document into a schema tree.
func Decode(data []byte) (*lws.SchemaNode, error) {
	var root wireNode
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaParse, err)
	}
	return buildNode(root)
}

// LoadFile reads and decodes the schema document at path.
func LoadFile(path string) (*lws.SchemaNode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaRead, err)
	}
	return Decode(data)
}
