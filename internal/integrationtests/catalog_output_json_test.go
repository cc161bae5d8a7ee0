package integration_tests

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/modrig/modrig/internal/catalog"
	"github.com/modrig/modrig/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOutput_JSONRoundTrip verifies that the JSON report is exactly the
// merged catalog in the loader wire shape, free of log noise.
func TestOutput_JSONRoundTrip(t *testing.T) {
	// --- Arrange ---
	files := map[string]string{
		"extra.hcl": `
library {
  file = "/opt/plugins/libcustom.so"

  module "org_example_Custom" {
    parameters = {
      endpoint = "http://localhost:8080"
    }
  }
}
`,
	}
	opts := testutil.Options{Output: "json"}

	// --- Act ---
	result := testutil.RunCatalogTestWithOptions(t, files, opts)

	// --- Assert ---
	require.NoError(t, result.Err)

	var got catalog.Catalog
	require.NoError(t, json.Unmarshal([]byte(result.Output), &got),
		"the results writer should carry parseable JSON only")
	require.Equal(t, 12, got.Len())

	// The caller library survives the round trip byte for byte.
	want := &catalog.Library{
		File: "/opt/plugins/libcustom.so",
		Modules: []*catalog.Module{{
			Name:       "org_example_Custom",
			Parameters: []catalog.Parameter{{Key: "endpoint", Value: "http://localhost:8080"}},
		}},
	}
	if diff := cmp.Diff(want, got.Libraries[0]); diff != "" {
		t.Errorf("Caller library mismatch (-want +got):\n%s", diff)
	}

	// Logs went to the log writer, not into the report.
	assert.NotEmpty(t, result.LogOutput)
	assert.NotContains(t, result.Output, "level=")
}
