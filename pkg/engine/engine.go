// Package engine models the host engine's registry surface: one store per
// content kind, rooted in a Registries value constructed per process (or per
// test) instead of living as ambient global state.
package engine

import (
	"github.com/mosbergapi/modkit/pkg/content"
	"github.com/mosbergapi/modkit/pkg/loot"
	"github.com/mosbergapi/modkit/pkg/model"
	"github.com/mosbergapi/modkit/pkg/recipe"
	"github.com/mosbergapi/modkit/pkg/registry"
)

// Registries is the engine-side registry root. Every registration made
// through a Kit lands in one of these stores; they are authoritative and
// never shed entries.
type Registries struct {
	Blocks        *registry.Map[*content.Block]
	Items         *registry.Map[*content.Item]
	Entities      *registry.Map[*content.Entity]
	Sounds        *registry.Map[*content.Sound]
	Particles     *registry.Map[*content.Particle]
	StatusEffects *registry.Map[*content.StatusEffect]
	Potions       *registry.Map[*content.Potion]
	Enchantments  *registry.Map[*content.Enchantment]
	Biomes        *registry.Map[*content.Biome]
	Recipes       *registry.Map[recipe.Recipe]
	LootTables    *registry.Map[*loot.Table]
	Models        *registry.Map[*model.Model]
}

// New returns an empty registry root.
func New() *Registries {
	return &Registries{
		Blocks:        registry.NewMap[*content.Block]("block"),
		Items:         registry.NewMap[*content.Item]("item"),
		Entities:      registry.NewMap[*content.Entity]("entity"),
		Sounds:        registry.NewMap[*content.Sound]("sound"),
		Particles:     registry.NewMap[*content.Particle]("particle"),
		StatusEffects: registry.NewMap[*content.StatusEffect]("status_effect"),
		Potions:       registry.NewMap[*content.Potion]("potion"),
		Enchantments:  registry.NewMap[*content.Enchantment]("enchantment"),
		Biomes:        registry.NewMap[*content.Biome]("biome"),
		Recipes:       registry.NewMap[recipe.Recipe]("recipe"),
		LootTables:    registry.NewMap[*loot.Table]("loot_table"),
		Models:        registry.NewMap[*model.Model]("model"),
	}
}
