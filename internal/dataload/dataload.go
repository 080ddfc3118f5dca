// Package dataload decodes a JSON data document into the plain
// map[string]any / []any / scalar tree that the lws package walks.
package dataload

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/jsonlws/lws"
)

// Decode parses a JSON data document.
func Decode(data []byte) (lws.Value, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataParse, err)
	}
	return v, nil
}

// LoadFile reads and decodes the data document at path.
func LoadFile(path string) (lws.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataRead, err)
	}
	return Decode(data)
}
