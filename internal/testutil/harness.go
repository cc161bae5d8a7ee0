package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modrig/modrig/internal/app"
	"github.com/modrig/modrig/internal/catalog"
	"github.com/modrig/modrig/internal/manager"
	"github.com/stretchr/testify/require"
)

// Options tweaks a harness run beyond the manifest files.
type Options struct {
	Modules string // --modules value: inline JSON or a manifest path
	Output  string // report format; empty means the default summary
}

// Result holds the outcomes of a full catalog run.
type Result struct {
	LogOutput string
	Output    string
	Err       error
	App       *app.App
	Manager   *manager.Manager
	Catalog   *catalog.Catalog // the catalog the loader was handed
}

// RunCatalogTest provides a standardized harness for running the app against
// a temporary modules directory populated from files.
func RunCatalogTest(t *testing.T, files map[string]string) *Result {
	t.Helper()
	return RunCatalogTestWithOptions(t, files, Options{})
}

// RunCatalogTestWithOptions is RunCatalogTest with explicit options.
func RunCatalogTestWithOptions(t *testing.T, files map[string]string, opts Options) *Result {
	t.Helper()

	// 1. Create dedicated, non-overlapping subdirectories for the run.
	tmpDir := t.TempDir()
	buildDir := filepath.Join(tmpDir, "build")
	modulesDir := filepath.Join(tmpDir, "modules")
	require.NoError(t, os.MkdirAll(buildDir, 0755))
	require.NoError(t, os.MkdirAll(modulesDir, 0755))

	// 2. Write all manifest files into the modules directory. Relative paths
	//    with subdirectories work and create the structure on the fly.
	for name, content := range files {
		path := filepath.Join(modulesDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	cfg, err := app.NewConfig(app.Config{
		BuildDir:   buildDir,
		Modules:    opts.Modules,
		ModulesDir: modulesDir,
		Output:     opts.Output,
		LogLevel:   "debug",
		LogFormat:  "text",
	})
	require.NoError(t, err)

	// 3. Run against the real structural manager, capturing the catalog it
	//    is handed on the way in.
	mgr := manager.New()
	var loaded *catalog.Catalog
	loader := manager.LoaderFunc(func(ctx context.Context, c *catalog.Catalog) error {
		loaded = c
		return mgr.Load(ctx, c)
	})

	logBuffer := &SafeBuffer{}
	var outBuffer bytes.Buffer

	testApp := app.NewApp(&outBuffer, logBuffer, cfg, loader)
	runErr := testApp.Run(context.Background())

	if os.Getenv("MODRIG_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &Result{
		LogOutput: logBuffer.String(),
		Output:    outBuffer.String(),
		Err:       runErr,
		App:       testApp,
		Manager:   mgr,
		Catalog:   loaded,
	}
}
