// Package vanilla ships named catalogs of stock engine content and seeds
// them into engine registries, so lookups against vanilla identifiers
// resolve without a running game. The built-in "core" catalog registers
// itself at import time; trimmed fixtures or other engine versions register
// the same way.
package vanilla

import (
	"fmt"
	"sort"

	"github.com/mosbergapi/modkit/pkg/content"
	"github.com/mosbergapi/modkit/pkg/engine"
	"github.com/mosbergapi/modkit/pkg/id"
	"github.com/mosbergapi/modkit/pkg/modkit"
	"github.com/mosbergapi/modkit/pkg/registry"
)

// Catalog is a named snapshot of stock content, keyed by path under the
// "minecraft" namespace.
type Catalog struct {
	Name          string
	Blocks        map[string]*content.Block
	Items         map[string]*content.Item
	Entities      map[string]*content.Entity
	Sounds        map[string]*content.Sound
	Particles     map[string]*content.Particle
	StatusEffects map[string]*content.StatusEffect
	Potions       map[string]*content.Potion
	Enchantments  map[string]*content.Enchantment
	Biomes        map[string]*content.Biome
}

var catalogs = map[string]func() *Catalog{}

// Register makes a catalog available to Load under name.
func Register(name string, factory func() *Catalog) {
	catalogs[name] = factory
}

// Load builds the named catalog.
func Load(name string) (*Catalog, error) {
	f, ok := catalogs[name]
	if !ok {
		return nil, fmt.Errorf("unknown catalog: %s", name)
	}
	return f(), nil
}

// Registered returns the names of all registered catalogs.
func Registered() []string {
	names := make([]string, 0, len(catalogs))
	for name := range catalogs {
		names = append(names, name)
	}
	return names
}

// Seed registers every catalog entry into eng under the "minecraft"
// namespace, each kind in path order. It stops at the first failure, so
// seeding the same catalog twice fails with registry.ErrDuplicate.
func Seed(eng *engine.Registries, c *Catalog) error {
	kit, err := modkit.New(eng, modkit.WithNamespace(id.DefaultNamespace))
	if err != nil {
		return fmt.Errorf("seed catalog %s: %w", c.Name, err)
	}

	if err := seedKind(kit.Blocks, c.Blocks); err != nil {
		return fmt.Errorf("seed catalog %s: %w", c.Name, err)
	}
	if err := seedKind(kit.Items, c.Items); err != nil {
		return fmt.Errorf("seed catalog %s: %w", c.Name, err)
	}
	if err := seedKind(kit.Entities, c.Entities); err != nil {
		return fmt.Errorf("seed catalog %s: %w", c.Name, err)
	}
	if err := seedKind(kit.Sounds, c.Sounds); err != nil {
		return fmt.Errorf("seed catalog %s: %w", c.Name, err)
	}
	if err := seedKind(kit.Particles, c.Particles); err != nil {
		return fmt.Errorf("seed catalog %s: %w", c.Name, err)
	}
	if err := seedKind(kit.StatusEffects, c.StatusEffects); err != nil {
		return fmt.Errorf("seed catalog %s: %w", c.Name, err)
	}
	if err := seedKind(kit.Potions, c.Potions); err != nil {
		return fmt.Errorf("seed catalog %s: %w", c.Name, err)
	}
	if err := seedKind(kit.Enchantments, c.Enchantments); err != nil {
		return fmt.Errorf("seed catalog %s: %w", c.Name, err)
	}
	if err := seedKind(kit.Biomes, c.Biomes); err != nil {
		return fmt.Errorf("seed catalog %s: %w", c.Name, err)
	}
	return nil
}

func seedKind[T any](r *registry.Registrar[T], entries map[string]T) error {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := r.Register(name, entries[name]); err != nil {
			return err
		}
	}
	return nil
}
