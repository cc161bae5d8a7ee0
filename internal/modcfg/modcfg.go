package modcfg

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/modrig/modrig/internal/catalog"
	"github.com/modrig/modrig/internal/ctxlog"
	"github.com/modrig/modrig/internal/fsutil"
)

// Loader parses one manifest format into a catalog.
type Loader interface {
	Load(ctx context.Context, path string) (*catalog.Catalog, error)
}

// loaders maps manifest extensions to their format loaders.
var loaders = map[string]Loader{
	".hcl":  HCLLoader{},
	".json": JSONLoader{},
	".yml":  YAMLLoader{},
	".yaml": YAMLLoader{},
}

// Extensions returns the manifest extensions LoadFile understands.
func Extensions() []string {
	return []string{".hcl", ".json", ".yml", ".yaml"}
}

// LoadFile loads a single manifest, picking the format by file extension.
func LoadFile(ctx context.Context, path string) (*catalog.Catalog, error) {
	loader, ok := loaders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("unsupported catalog format %q in %s", filepath.Ext(path), path)
	}
	return loader.Load(ctx, path)
}

// Parse interprets a modules flag value: inline JSON when it starts with a
// brace, otherwise a manifest path.
func Parse(ctx context.Context, value string) (*catalog.Catalog, error) {
	if strings.HasPrefix(strings.TrimSpace(value), "{") {
		return parseJSON([]byte(value), "inline modules value")
	}
	return LoadFile(ctx, value)
}

// LoadDir discovers every manifest under dir and merges them into one
// catalog in lexical walk order.
func LoadDir(ctx context.Context, dir string) (*catalog.Catalog, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading module catalogs from directory", "path", dir)

	files, err := fsutil.FindFilesByExtension(dir, Extensions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to find catalog files in %s: %w", dir, err)
	}

	merged := catalog.New()
	if len(files) == 0 {
		logger.Warn("No catalog files found in path, returning empty catalog", "path", dir)
		return merged, nil
	}

	for _, file := range files {
		c, err := LoadFile(ctx, file)
		if err != nil {
			return nil, err
		}
		merged.Append(c)
	}
	return merged, nil
}

// validate enforces the structural minimum every manifest must meet. It
// deliberately never stats library files: catalogs routinely reference
// artifacts that are still building.
func validate(c *catalog.Catalog, source string) error {
	for _, lib := range c.Libraries {
		if lib.File == "" {
			return fmt.Errorf("catalog %s: library file path not provided", source)
		}
		for _, mod := range lib.Modules {
			if mod.Name == "" {
				return fmt.Errorf("catalog %s: library %s: module name not provided", source, lib.File)
			}
		}
	}
	return nil
}
