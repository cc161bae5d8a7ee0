package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modrig/modrig/internal/catalog"
	"github.com/modrig/modrig/internal/ctxlog"
	"github.com/modrig/modrig/internal/modcfg"
)

// Run executes the main application logic: gather caller manifests, assemble
// the catalog on top of them, hand the result to the loader, and report it
// on the results writer.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	base, err := a.callerCatalog(ctx)
	if err != nil {
		return err
	}
	if base.Len() > 0 {
		a.logger.Info("Caller catalog loaded.", "libraries", base.Len())
	}

	merged, err := a.assembler.InitModules(ctx, base, a.loader)
	if err != nil {
		return err
	}
	a.logger.Info("Module catalog assembled and loaded.",
		"libraries", merged.Len(),
		"registered_names", a.names.Len())

	if err := a.emit(merged); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// callerCatalog gathers operator-supplied manifests. The modules flag value
// comes first, then the modules directory, so flag entries end up earliest
// in the merged catalog.
func (a *App) callerCatalog(ctx context.Context) (*catalog.Catalog, error) {
	base := catalog.New()

	if a.config.Modules != "" {
		c, err := modcfg.Parse(ctx, a.config.Modules)
		if err != nil {
			return nil, fmt.Errorf("failed to load modules value: %w", err)
		}
		base.Append(c)
	}

	if a.config.ModulesDir != "" {
		c, err := modcfg.LoadDir(ctx, a.config.ModulesDir)
		if err != nil {
			return nil, err
		}
		base.Append(c)
	}

	return base, nil
}

// emit writes the merged catalog to the results writer in the configured
// output format.
func (a *App) emit(c *catalog.Catalog) error {
	switch a.config.Output {
	case OutputJSON:
		enc := json.NewEncoder(a.outW)
		enc.SetIndent("", "  ")
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("failed to encode catalog: %w", err)
		}
	default:
		a.summarize(c)
	}
	return nil
}

// summarize prints a human-oriented listing of the catalog.
func (a *App) summarize(c *catalog.Catalog) {
	fmt.Fprintf(a.outW, "Module catalog: %d libraries\n", c.Len())
	for _, lib := range c.Libraries {
		fmt.Fprintf(a.outW, "  %s\n", lib.File)
		for _, mod := range lib.Modules {
			if len(mod.Parameters) > 0 {
				fmt.Fprintf(a.outW, "    %s (%d parameters)\n", mod.Name, len(mod.Parameters))
			} else {
				fmt.Fprintf(a.outW, "    %s\n", mod.Name)
			}
		}
	}
}
