package modcfg

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/modrig/modrig/internal/catalog"
)

// JSONLoader parses catalog files in the loader's wire shape.
type JSONLoader struct{}

// Load implements Loader.
func (JSONLoader) Load(ctx context.Context, path string) (*catalog.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return parseJSON(data, path)
}

// parseJSON decodes catalog JSON from either a file or an inline flag value.
func parseJSON(data []byte, source string) (*catalog.Catalog, error) {
	c := catalog.New()
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", source, err)
	}
	if err := validate(c, source); err != nil {
		return nil, err
	}
	return c, nil
}
