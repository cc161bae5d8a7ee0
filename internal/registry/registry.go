package registry

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/modrig/modrig/internal/moduleid"
)

// ErrNotFound is returned by Lookup for identifiers that were never
// registered.
var ErrNotFound = errors.New("not found")

// Registry maps module identifiers to the display names the dynamic loader
// resolves them under. A Registry instance is owned by whoever assembles the
// catalog; there is no process-global instance.
//
// Registration is last-write-wins: registering an identifier again replaces
// the prior name without complaint. Catalog construction is single-threaded
// by contract, so the Registry carries no locking.
type Registry struct {
	names map[moduleid.ID]string
}

// New creates and initializes an empty Registry instance.
func New() *Registry {
	return &Registry{
		names: make(map[moduleid.ID]string),
	}
}

// Register records that id maps to name, replacing any prior mapping for id.
func (r *Registry) Register(id moduleid.ID, name string) {
	slog.Debug("Registering module name.", "id", id.String(), "name", name)
	r.names[id] = name
}

// Lookup returns the display name registered for id, or an error wrapping
// ErrNotFound if id was never registered.
func (r *Registry) Lookup(id moduleid.ID) (string, error) {
	name, ok := r.names[id]
	if !ok {
		return "", fmt.Errorf("module '%s': %w", id, ErrNotFound)
	}
	return name, nil
}

// Len reports how many distinct identifiers are registered.
func (r *Registry) Len() int {
	return len(r.names)
}
