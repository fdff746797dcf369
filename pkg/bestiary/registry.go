package bestiary

import (
	"fmt"
	"sort"
	"sync"

	"github.com/SkyPlay-Code/centipede/pkg/creature"
)

// Registry is a concurrency-safe catalog of creature presets. The viewer
// mutates it from HTTP handlers while the tick loop reads it, so every
// accessor takes the lock.
type Registry struct {
	mu      sync.RWMutex
	presets map[string]*Preset
}

// NewRegistry creates an empty preset registry.
func NewRegistry() *Registry {
	return &Registry{presets: make(map[string]*Preset)}
}

// LoadBuiltIn registers every embedded preset.
func (r *Registry) LoadBuiltIn() error {
	names, err := ListEmbedded()
	if err != nil {
		return err
	}
	for _, name := range names {
		p, err := LoadEmbedded(name)
		if err != nil {
			return err
		}
		r.Register(p)
	}
	return nil
}

// LoadCustomDir registers presets from a directory on disk. Custom presets
// shadow built-ins with the same name.
func (r *Registry) LoadCustomDir(dir string) error {
	presets, err := LoadFromDirectory(dir)
	if err != nil {
		return err
	}
	for _, p := range presets {
		r.Register(p)
	}
	return nil
}

// Register adds or replaces a preset.
func (r *Registry) Register(p *Preset) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.presets[p.Name] = p
}

// Unregister removes a preset. Removing an unknown name is a no-op.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.presets, name)
}

// Get retrieves a preset by name.
func (r *Registry) Get(name string) (*Preset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return p, nil
}

// List returns the registered preset names in alphabetical order.
func (r *Registry) List() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.presets))
	for name := range r.presets {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// ListWithDescriptions maps each registered name to its description.
func (r *Registry) ListWithDescriptions() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]string, len(r.presets))
	for name, p := range r.presets {
		out[name] = p.Description
	}
	return out
}

// Count returns the number of registered presets.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.presets)
}

// Spawn builds a new creature from the named preset.
func (r *Registry) Spawn(name string) (*creature.Creature, error) {
	p, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return creature.New(p.Config)
}
