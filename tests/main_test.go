package tests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonlws/lws"
	"github.com/jsonlws/lws/internal/dataload"
	"github.com/jsonlws/lws/internal/schemaload"
)

type fixtureWant struct {
	SchemaKeyErrors int `json:"schemaKeyErrors"`
	SchemaValErrors int `json:"schemaValErrors"`
	DataKeyErrors   int `json:"dataKeyErrors"`
	DataValErrors   int `json:"dataValErrors"`
}

type fixture struct {
	Description string          `json:"description"`
	Schema      json.RawMessage `json:"schema"`
	Data        json.RawMessage `json:"data"`
	Want        fixtureWant     `json:"want"`
}

// TestFixtures runs every scenario under fixtures/ against both
// validation directions and checks the reported error tallies.
func TestFixtures(t *testing.T) {
	files, err := filepath.Glob("fixtures/*.json")
	require.NoError(t, err)
	require.NotEmpty(t, files, "no fixtures found")

	for _, path := range files {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			raw, err := os.ReadFile(path) //nolint:gosec
			require.NoError(t, err)

			var fx fixture
			require.NoError(t, json.Unmarshal(raw, &fx))

			schema, err := schemaload.Decode(fx.Schema)
			require.NoError(t, err)

			data, err := dataload.Decode(fx.Data)
			require.NoError(t, err)

			report := lws.Validate(schema, data)

			assert.Equal(t, fx.Want.SchemaKeyErrors, report.SchemaKeyErrors, "schema key errors")
			assert.Equal(t, fx.Want.SchemaValErrors, report.SchemaValErrors, "schema value errors")
			assert.Equal(t, fx.Want.DataKeyErrors, report.DataKeyErrors, "data key errors")
			assert.Equal(t, fx.Want.DataValErrors, report.DataValErrors, "data value errors")
		})
	}
}
