package catalog

// Parameter is one key/value configuration string handed to a module entry
// point at load time.
type Parameter struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Module is one named, loadable entry point within a library.
type Module struct {
	Name       string      `json:"name" yaml:"name"`
	Parameters []Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// Library describes one shared library by its file path and the ordered
// module entry points it exposes.
type Library struct {
	File    string    `json:"file" yaml:"file"`
	Modules []*Module `json:"modules,omitempty" yaml:"modules,omitempty"`
}

// Catalog is the complete set of libraries handed to the module loader.
type Catalog struct {
	Libraries []*Library `json:"libraries,omitempty" yaml:"libraries,omitempty"`
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{}
}

// AddLibrary appends a library entry for the given file path and returns it
// so modules can be attached to it directly. It never inspects or merges
// with existing entries; appending the same path twice produces two entries.
func (c *Catalog) AddLibrary(file string) *Library {
	l := &Library{File: file}
	c.Libraries = append(c.Libraries, l)
	return l
}

// Len reports the number of library entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Libraries)
}

// AddModule appends a module entry point with the given display name and
// returns it so parameters can be attached to it directly.
func (l *Library) AddModule(name string) *Module {
	m := &Module{Name: name}
	l.Modules = append(l.Modules, m)
	return m
}

// AddParameter appends one key/value parameter to the module.
func (m *Module) AddParameter(key, value string) {
	m.Parameters = append(m.Parameters, Parameter{Key: key, Value: value})
}

// Clone returns a deep copy of the catalog. A nil receiver yields an empty
// catalog, so an optional caller-supplied catalog can be cloned without a
// nil check. Assembly always works on a clone: the caller's value is never
// aliased or mutated.
func (c *Catalog) Clone() *Catalog {
	out := New()
	out.Append(c)
	return out
}

// Append appends deep copies of other's library entries to c, preserving
// their order. A nil other is a no-op.
func (c *Catalog) Append(other *Catalog) {
	if other == nil {
		return
	}
	for _, lib := range other.Libraries {
		l := c.AddLibrary(lib.File)
		for _, mod := range lib.Modules {
			m := l.AddModule(mod.Name)
			for _, p := range mod.Parameters {
				m.AddParameter(p.Key, p.Value)
			}
		}
	}
}
