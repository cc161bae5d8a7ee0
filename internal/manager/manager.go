package manager

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/modrig/modrig/internal/catalog"
	"github.com/modrig/modrig/internal/ctxlog"
)

// Loader accepts a fully assembled catalog for loading. Implementations own
// everything past that point; the catalog builder does not interpret or
// retry their failures.
type Loader interface {
	Load(ctx context.Context, c *catalog.Catalog) error
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc func(ctx context.Context, c *catalog.Catalog) error

// Load implements Loader by calling f.
func (f LoaderFunc) Load(ctx context.Context, c *catalog.Catalog) error {
	return f(ctx, c)
}

// Manager verifies and records module catalogs. It rejects libraries without
// a file path, modules without a name, and module names it has already
// recorded: the loader resolves entry points by name, so a duplicate would
// shadow an earlier module. It never checks that library files exist; that
// is the dynamic loader's problem at open time.
//
// A failed Load leaves the Manager partially populated; use a fresh Manager
// per load attempt.
type Manager struct {
	sources map[string]string // module name -> providing library file
}

// New creates an empty Manager.
func New() *Manager {
	return &Manager{
		sources: make(map[string]string),
	}
}

// Load implements Loader.
func (m *Manager) Load(ctx context.Context, c *catalog.Catalog) error {
	logger := ctxlog.FromContext(ctx)

	for _, lib := range c.Libraries {
		if lib.File == "" {
			return errors.New("library file path not provided")
		}
		for _, mod := range lib.Modules {
			if mod.Name == "" {
				return fmt.Errorf("library %s: module name not provided", lib.File)
			}
			if prev, ok := m.sources[mod.Name]; ok {
				return fmt.Errorf("module '%s' from %s already provided by %s", mod.Name, lib.File, prev)
			}
			m.sources[mod.Name] = lib.File
		}
	}

	logger.Info("Module catalog accepted.", "libraries", c.Len(), "modules", len(m.sources))
	return nil
}

// Loaded returns the recorded module names in sorted order.
func (m *Manager) Loaded() []string {
	names := make([]string, 0, len(m.sources))
	for name := range m.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Source returns the library file that provides the named module.
func (m *Manager) Source(name string) (string, bool) {
	file, ok := m.sources[name]
	return file, ok
}
