package geometry

import (
	"fmt"
	"sort"
	"sync"
)

// Blueprint is an immutable named template for an entity: the visual shapes
// drawn in order (later shapes on top), the collision shape tested by the
// simulation, and a uniform scale applied to both. Blueprints are registered
// once at startup and shared by reference afterwards.
type Blueprint struct {
	Name      string         `yaml:"name"`
	Shapes    []Shape        `yaml:"shapes"`
	Collision CollisionShape `yaml:"collision"`
	Scale     float64        `yaml:"scale"`
}

// Validate checks the blueprint and every contained shape.
func (b *Blueprint) Validate() error {
	if b.Name == "" {
		return fmt.Errorf("geometry: blueprint has empty name: %w", ErrMalformedBlueprint)
	}
	if b.Scale <= 0 {
		return fmt.Errorf("geometry: blueprint %q scale %v must be positive: %w", b.Name, b.Scale, ErrMalformedBlueprint)
	}
	for i, s := range b.Shapes {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("geometry: blueprint %q shape %d: %w", b.Name, i, err)
		}
	}
	if err := b.Collision.Validate(); err != nil {
		return fmt.Errorf("geometry: blueprint %q: %w", b.Name, err)
	}
	return nil
}

// BoundingRadius returns the scaled bounding radius of the collision shape.
func (b *Blueprint) BoundingRadius() float64 {
	return b.Collision.BoundingRadius() * b.Scale
}

var (
	blueprints = make(map[string]*Blueprint)
	mu         sync.RWMutex
)

// Register validates a blueprint and adds it to the global library.
// Typically called from init() for built-in blueprints.
// Panics if the blueprint is malformed or the name is already taken,
// since both indicate a programming error at startup.
func Register(b *Blueprint) {
	if err := b.Validate(); err != nil {
		panic(fmt.Sprintf("geometry: cannot register blueprint: %v", err))
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := blueprints[b.Name]; exists {
		panic(fmt.Sprintf("geometry: blueprint %q already registered", b.Name))
	}
	blueprints[b.Name] = b
}

// Load validates an externally sourced blueprint and adds it to the library,
// returning an error instead of panicking. Used for blueprints read from
// YAML files rather than compiled-in definitions.
func Load(b *Blueprint) error {
	if err := b.Validate(); err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := blueprints[b.Name]; exists {
		return fmt.Errorf("geometry: blueprint %q already registered", b.Name)
	}
	blueprints[b.Name] = b
	return nil
}

// Get returns the blueprint with the given name.
func Get(name string) (*Blueprint, error) {
	mu.RLock()
	defer mu.RUnlock()

	b, ok := blueprints[name]
	if !ok {
		return nil, fmt.Errorf("geometry: unknown blueprint %q", name)
	}
	return b, nil
}

// MustGet returns a registered blueprint or panics. For built-in names
// known to exist at compile time.
func MustGet(name string) *Blueprint {
	b, err := Get(name)
	if err != nil {
		panic(err)
	}
	return b
}

// List returns the names of all registered blueprints, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(blueprints))
	for name := range blueprints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
