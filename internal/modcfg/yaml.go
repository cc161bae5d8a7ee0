package modcfg

import (
	"context"
	"fmt"
	"os"

	"github.com/modrig/modrig/internal/catalog"
	"gopkg.in/yaml.v3"
)

// YAMLLoader parses catalog files in YAML form, the same shape as JSON.
type YAMLLoader struct{}

// Load implements Loader.
func (YAMLLoader) Load(ctx context.Context, path string) (*catalog.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	c := catalog.New()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	if err := validate(c, path); err != nil {
		return nil, err
	}
	return c, nil
}
