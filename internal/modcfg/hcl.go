package modcfg

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/modrig/modrig/internal/catalog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// HCLLoader parses manifests written as library blocks.
type HCLLoader struct{}

// hclCatalogFile is the top-level decode schema for a manifest.
type hclCatalogFile struct {
	Libraries []*hclLibrary `hcl:"library,block"`
}

type hclLibrary struct {
	File    string       `hcl:"file"`
	Modules []*hclModule `hcl:"module,block"`
}

type hclModule struct {
	Name       string    `hcl:"name,label"`
	Parameters cty.Value `hcl:"parameters,optional"`
}

// Load implements Loader.
func (HCLLoader) Load(ctx context.Context, path string) (*catalog.Catalog, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, diags)
	}

	var parsed hclCatalogFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode catalog file %s: %w", path, diags)
	}

	c := catalog.New()
	for _, lib := range parsed.Libraries {
		entry := c.AddLibrary(lib.File)
		for _, mod := range lib.Modules {
			m := entry.AddModule(mod.Name)
			if err := appendParameters(m, mod.Parameters); err != nil {
				return nil, fmt.Errorf("catalog %s: module %q: %w", path, mod.Name, err)
			}
		}
	}

	if err := validate(c, path); err != nil {
		return nil, err
	}
	return c, nil
}

// appendParameters flattens an HCL parameters object into key/value pairs.
// cty objects do not preserve source attribute order, so keys are appended
// sorted to keep the resulting catalog deterministic.
func appendParameters(m *catalog.Module, v cty.Value) error {
	if v.IsNull() {
		return nil
	}
	ty := v.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return fmt.Errorf("parameters must be an object, got %s", ty.FriendlyName())
	}

	values := v.AsValueMap()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		val := values[k]
		if val.IsNull() {
			return fmt.Errorf("parameter %q has a null value", k)
		}
		s, err := convert.Convert(val, cty.String)
		if err != nil {
			return fmt.Errorf("parameter %q: %w", k, err)
		}
		m.AddParameter(k, s.AsString())
	}
	return nil
}
