package builder

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/modrig/modrig/internal/catalog"
	"github.com/modrig/modrig/internal/ctxlog"
	"github.com/modrig/modrig/internal/libpath"
	"github.com/modrig/modrig/internal/manager"
	"github.com/modrig/modrig/internal/moduleid"
	"github.com/modrig/modrig/internal/registry"
)

// Layout locates module artifacts inside an autotools build tree. All paths
// derive from BuildDir; the layout never checks that anything exists on
// disk, since catalogs are routinely assembled for trees that are still
// building.
type Layout struct {
	BuildDir string
}

// LibraryDir returns the directory libtool places finished shared libraries
// in.
func (l Layout) LibraryDir() string {
	return filepath.Join(l.BuildDir, "src", ".libs")
}

// LibraryPath expands a logical library name to its platform file name and
// anchors it in the library directory.
func (l Layout) LibraryPath(name string) string {
	return filepath.Join(l.LibraryDir(), libpath.Expand(name))
}

// LauncherDir returns the directory the container launcher binary is built
// in. The logrotate logger needs it to spawn its companion process.
func (l Layout) LauncherDir() string {
	return filepath.Join(l.BuildDir, "src")
}

// Assembler builds the test-module catalog for one build tree and records
// every assembled module's name in a registry so later code can refer to
// modules by identifier instead of by spelled-out name.
type Assembler struct {
	layout Layout
	names  *registry.Registry
}

// New creates an Assembler over the given build layout. Assembled module
// names are registered on names as a side effect of Assemble.
func New(layout Layout, names *registry.Registry) *Assembler {
	return &Assembler{
		layout: layout,
		names:  names,
	}
}

// Names returns the registry the assembler records module names in.
func (a *Assembler) Names() *registry.Registry {
	return a.names
}

// Assemble walks the category table and returns a catalog containing base's
// entries followed by every built-in library. base is deep-copied first and
// never mutated; nil means no caller entries. Calling Assemble twice
// appends the built-in entries twice, it deduplicates nothing.
func (a *Assembler) Assemble(ctx context.Context, base *catalog.Catalog) *catalog.Catalog {
	logger := ctxlog.FromContext(ctx)

	out := base.Clone()
	for _, cat := range categories {
		for _, lib := range cat.Libraries {
			file := a.layout.LibraryPath(lib.Name)
			logger.Debug("Adding library to module catalog.",
				"category", cat.Name,
				"library", lib.Name,
				"file", file)

			entry := out.AddLibrary(file)
			for _, spec := range lib.Modules {
				name := fmt.Sprintf("%s_%s", Namespace, spec.EntryPoint)
				mod := entry.AddModule(name)
				if spec.Params != nil {
					for _, p := range spec.Params(a.layout) {
						mod.AddParameter(p.Key, p.Value)
					}
				}
				a.names.Register(spec.ID, name)
			}
		}
	}
	return out
}

// ModuleName resolves an identifier through the assembler's registry. It
// only succeeds after Assemble has run.
func (a *Assembler) ModuleName(id moduleid.ID) (string, error) {
	return a.names.Lookup(id)
}

// InitModules assembles the catalog on top of base and hands the result to
// loader in one step. The assembled catalog is returned so callers can
// inspect or report it; on a load failure the catalog is discarded, though
// name registrations from the assembly phase remain in effect.
func (a *Assembler) InitModules(ctx context.Context, base *catalog.Catalog, loader manager.Loader) (*catalog.Catalog, error) {
	c := a.Assemble(ctx, base)
	if err := loader.Load(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to load module catalog: %w", err)
	}
	return c, nil
}
