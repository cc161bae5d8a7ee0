package modcfg

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modrig/modrig/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeManifest drops one manifest file into dir and returns its full path.
func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFileHCL(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "extra.hcl", `
library {
  file = "/opt/plugins/libalpha.so"

  module "org_example_Alpha" {
    parameters = {
      mode    = "fast"
      retries = 4
      dry_run = true
    }
  }

  module "org_example_Beta" {}
}

library {
  file = "/opt/plugins/libgamma.so"
}
`)

	got, err := LoadFile(context.Background(), path)
	require.NoError(t, err)

	require.Equal(t, 2, got.Len())
	assert.Equal(t, "/opt/plugins/libalpha.so", got.Libraries[0].File)
	require.Len(t, got.Libraries[0].Modules, 2)
	assert.Equal(t, "org_example_Alpha", got.Libraries[0].Modules[0].Name)
	assert.Equal(t, "org_example_Beta", got.Libraries[0].Modules[1].Name)
	assert.Equal(t, "/opt/plugins/libgamma.so", got.Libraries[1].File)
	assert.Empty(t, got.Libraries[1].Modules)

	// Parameter keys come out sorted; non-string values are stringified.
	assert.Equal(t, []catalog.Parameter{
		{Key: "dry_run", Value: "true"},
		{Key: "mode", Value: "fast"},
		{Key: "retries", Value: "4"},
	}, got.Libraries[0].Modules[0].Parameters)
}

func TestLoadFileJSON(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "extra.json", `{
  "libraries": [
    {
      "file": "/opt/plugins/libalpha.so",
      "modules": [
        {
          "name": "org_example_Alpha",
          "parameters": [{"key": "mode", "value": "fast"}]
        }
      ]
    }
  ]
}`)

	got, err := LoadFile(context.Background(), path)
	require.NoError(t, err)

	require.Equal(t, 1, got.Len())
	assert.Equal(t, "/opt/plugins/libalpha.so", got.Libraries[0].File)
	require.Len(t, got.Libraries[0].Modules, 1)
	assert.Equal(t, "org_example_Alpha", got.Libraries[0].Modules[0].Name)
	assert.Equal(t, []catalog.Parameter{{Key: "mode", Value: "fast"}},
		got.Libraries[0].Modules[0].Parameters)
}

func TestLoadFileYAML(t *testing.T) {
	for _, ext := range []string{"yml", "yaml"} {
		t.Run(ext, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), "extra."+ext, `
libraries:
  - file: /opt/plugins/libalpha.so
    modules:
      - name: org_example_Alpha
        parameters:
          - key: mode
            value: fast
`)

			got, err := LoadFile(context.Background(), path)
			require.NoError(t, err)

			require.Equal(t, 1, got.Len())
			assert.Equal(t, "/opt/plugins/libalpha.so", got.Libraries[0].File)
			require.Len(t, got.Libraries[0].Modules, 1)
			assert.Equal(t, "org_example_Alpha", got.Libraries[0].Modules[0].Name)
			assert.Equal(t, []catalog.Parameter{{Key: "mode", Value: "fast"}},
				got.Libraries[0].Modules[0].Parameters)
		})
	}
}

func TestLoadFileUnsupportedExtension(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "extra.toml", `libraries = []`)

	_, err := LoadFile(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported catalog format")
}

func TestLoadFileHCLParseError(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "broken.hcl", `library {`)

	_, err := LoadFile(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse catalog file")
}

func TestHCLRejectsBadParameters(t *testing.T) {
	testCases := []struct {
		name     string
		manifest string
		wantErr  string
	}{
		{
			name: "parameters is not an object",
			manifest: `
library {
  file = "/opt/plugins/liba.so"
  module "org_example_A" {
    parameters = ["not", "an", "object"]
  }
}`,
			wantErr: "parameters must be an object",
		},
		{
			name: "null parameter value",
			manifest: `
library {
  file = "/opt/plugins/liba.so"
  module "org_example_A" {
    parameters = {
      mode = null
    }
  }
}`,
			wantErr: "has a null value",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), "extra.hcl", tc.manifest)

			_, err := LoadFile(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadFileRejectsStructuralViolations(t *testing.T) {
	testCases := []struct {
		name     string
		file     string
		manifest string
		wantErr  string
	}{
		{
			name:     "library without file path",
			file:     "extra.json",
			manifest: `{"libraries": [{"file": "", "modules": [{"name": "org_example_A"}]}]}`,
			wantErr:  "library file path not provided",
		},
		{
			name:     "module without name",
			file:     "extra.json",
			manifest: `{"libraries": [{"file": "/opt/plugins/liba.so", "modules": [{"name": ""}]}]}`,
			wantErr:  "module name not provided",
		},
		{
			name:     "yaml library without file path",
			file:     "extra.yaml",
			manifest: "libraries:\n  - modules:\n      - name: org_example_A\n",
			wantErr:  "library file path not provided",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tc.file, tc.manifest)

			_, err := LoadFile(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestParseInlineJSON(t *testing.T) {
	got, err := Parse(context.Background(),
		`{"libraries": [{"file": "/opt/plugins/liba.so", "modules": [{"name": "org_example_A"}]}]}`)
	require.NoError(t, err)

	require.Equal(t, 1, got.Len())
	assert.Equal(t, "/opt/plugins/liba.so", got.Libraries[0].File)
}

func TestParsePathValue(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "extra.yaml", `
libraries:
  - file: /opt/plugins/libb.so
`)

	got, err := Parse(context.Background(), path)
	require.NoError(t, err)

	require.Equal(t, 1, got.Len())
	assert.Equal(t, "/opt/plugins/libb.so", got.Libraries[0].File)
}

func TestLoadDirMergesInWalkOrder(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "b.json", `{"libraries": [{"file": "/p/libb.so"}]}`)
	writeManifest(t, dir, "a.hcl", `
library {
  file = "/p/liba.so"
}`)
	writeManifest(t, dir, filepath.Join("nested", "c.yaml"), `
libraries:
  - file: /p/libc.so
`)
	// Files without a manifest extension are ignored.
	writeManifest(t, dir, "README.md", "not a manifest")

	got, err := LoadDir(context.Background(), dir)
	require.NoError(t, err)

	require.Equal(t, 3, got.Len())
	assert.Equal(t, "/p/liba.so", got.Libraries[0].File)
	assert.Equal(t, "/p/libb.so", got.Libraries[1].File)
	assert.Equal(t, "/p/libc.so", got.Libraries[2].File)
}

func TestLoadDirEmpty(t *testing.T) {
	got, err := LoadDir(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestLoadDirMissing(t *testing.T) {
	_, err := LoadDir(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find catalog files")
}

// TestExampleManifestsLoad keeps the shipped example manifests honest: all
// three formats must stay loadable as the formats evolve.
func TestExampleManifestsLoad(t *testing.T) {
	got, err := LoadDir(context.Background(), filepath.Join("..", "..", "examples", "modules"))
	require.NoError(t, err)

	require.Equal(t, 3, got.Len())
	var names []string
	for _, lib := range got.Libraries {
		for _, mod := range lib.Modules {
			names = append(names, mod.Name)
		}
	}
	assert.Equal(t, []string{
		"org_example_RateLimiter",
		"org_example_Probe",
		"org_example_Auditor",
		"org_example_Tracer",
	}, names)
}
