package schemaload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonlws/lws"
	"github.com/jsonlws/lws/internal/schemaload"
)

func TestDecodeLeaf(t *testing.T) {
	doc := []byte(`{"children": [{"key": ["name", "text"], "value": ["name", "text"]}]}`)
	node, err := schemaload.Decode(doc)
	require.NoError(t, err)
	require.Len(t, node.Children, 1)
	assert.Equal(t, "name", node.Children[0].Key.Name)
	assert.Equal(t, lws.KindText, node.Children[0].Key.Type)
	assert.NotNil(t, node.Children[0].Node.Leaf)
}

func TestDecodeNestedInterior(t *testing.T) {
	doc := []byte(`{
		"children": [
			{"key": ["address", "text"], "children": [
				{"key": ["city", "text"], "value": ["city", "text"]}
			]}
		]
	}`)
	node, err := schemaload.Decode(doc)
	require.NoError(t, err)
	require.Len(t, node.Children, 1)
	addr := node.Children[0]
	assert.Nil(t, addr.Node.Leaf)
	require.Len(t, addr.Node.Children, 1)
	assert.Equal(t, "city", addr.Node.Children[0].Key.Name)
}

func TestDecodeAcceptsYAML(t *testing.T) {
	doc := []byte("children:\n  - key: [name, text]\n    value: [name, text]\n")
	node, err := schemaload.Decode(doc)
	require.NoError(t, err)
	require.Len(t, node.Children, 1)
	assert.Equal(t, "name", node.Children[0].Key.Name)
}

func TestDecodeMalformedChild(t *testing.T) {
	doc := []byte(`{"children": [{"value": ["name", "text"]}]}`)
	_, err := schemaload.Decode(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, schemaload.ErrSchemaParse)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := schemaload.LoadFile("does-not-exist.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, schemaload.ErrSchemaRead)
}
