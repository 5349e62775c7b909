package vanilla

import (
	"github.com/mosbergapi/modkit/pkg/content"
	"github.com/mosbergapi/modkit/pkg/id"
)

func init() {
	Register("core", newCore)
}

func mc(path string) id.ID {
	return id.MustNew(id.DefaultNamespace, path)
}

// newCore builds the stock content catalog. Values follow the reference game
// data; the set is the slice of it that mods most often look up.
func newCore() *Catalog {
	return &Catalog{
		Name: "core",
		Blocks: map[string]*content.Block{
			"stone":       {DisplayName: "Stone", Material: "rock", Hardness: 1.5, Resistance: 6, Diggable: true},
			"cobblestone": {DisplayName: "Cobblestone", Material: "rock", Hardness: 2, Resistance: 6, Diggable: true},
			"dirt":        {DisplayName: "Dirt", Material: "dirt", Hardness: 0.5, Resistance: 0.5, Diggable: true},
			"sand":        {DisplayName: "Sand", Material: "sand", Hardness: 0.5, Resistance: 0.5, Diggable: true},
			"oak_planks":  {DisplayName: "Oak Planks", Material: "wood", Hardness: 2, Resistance: 3, Diggable: true},
			"glass":       {DisplayName: "Glass", Material: "glass", Hardness: 0.3, Resistance: 0.3, Transparent: true, Diggable: true},
			"glowstone":   {DisplayName: "Glowstone", Material: "glass", Hardness: 0.3, Resistance: 0.3, LightLevel: 15, Transparent: true, Diggable: true},
			"obsidian":    {DisplayName: "Obsidian", Material: "rock", Hardness: 50, Resistance: 1200, Diggable: true},
		},
		Items: map[string]*content.Item{
			"stick":        {DisplayName: "Stick", StackSize: 64},
			"coal":         {DisplayName: "Coal", StackSize: 64},
			"iron_ingot":   {DisplayName: "Iron Ingot", StackSize: 64},
			"gold_ingot":   {DisplayName: "Gold Ingot", StackSize: 64},
			"diamond":      {DisplayName: "Diamond", StackSize: 64},
			"iron_sword":   {DisplayName: "Iron Sword", StackSize: 1, MaxDurability: 250},
			"iron_pickaxe": {DisplayName: "Iron Pickaxe", StackSize: 1, MaxDurability: 250},
		},
		Entities: map[string]*content.Entity{
			"creeper": {DisplayName: "Creeper", Category: "monster", Width: 0.6, Height: 1.7, MaxHealth: 20},
			"zombie":  {DisplayName: "Zombie", Category: "monster", Width: 0.6, Height: 1.95, MaxHealth: 20},
			"cow":     {DisplayName: "Cow", Category: "creature", Width: 0.9, Height: 1.4, MaxHealth: 10},
		},
		Sounds: map[string]*content.Sound{
			"block.stone.break":     {Subtitle: "Block broken", Paths: []string{"dig/stone1", "dig/stone2"}},
			"block.stone.place":     {Subtitle: "Block placed", Paths: []string{"dig/stone1"}},
			"entity.creeper.primed": {Subtitle: "Creeper hisses", Paths: []string{"random/fuse"}},
			"ambient.cave":          {Subtitle: "Eerie noise", Paths: []string{"ambient/cave/cave1"}},
		},
		Particles: map[string]*content.Particle{
			"smoke": {DisplayName: "Smoke"},
			"flame": {DisplayName: "Flame"},
			"crit":  {DisplayName: "Critical Hit"},
			"heart": {DisplayName: "Heart"},
		},
		StatusEffects: map[string]*content.StatusEffect{
			"speed":        {DisplayName: "Speed", Type: "beneficial", Color: 8171462},
			"slowness":     {DisplayName: "Slowness", Type: "harmful", Color: 5926017},
			"strength":     {DisplayName: "Strength", Type: "beneficial", Color: 9643043},
			"regeneration": {DisplayName: "Regeneration", Type: "beneficial", Color: 13458603},
		},
		Potions: map[string]*content.Potion{
			"swiftness": {DisplayName: "Potion of Swiftness", Effects: []content.EffectInstance{
				{Effect: mc("speed"), Duration: 3600},
			}},
			"strength": {DisplayName: "Potion of Strength", Effects: []content.EffectInstance{
				{Effect: mc("strength"), Duration: 3600},
			}},
		},
		Enchantments: map[string]*content.Enchantment{
			"protection": {DisplayName: "Protection", Category: "armor", MaxLevel: 4, Weight: 10},
			"sharpness":  {DisplayName: "Sharpness", Category: "weapon", MaxLevel: 5, Weight: 10},
			"unbreaking": {DisplayName: "Unbreaking", Category: "breakable", MaxLevel: 3, Weight: 5},
			"mending":    {DisplayName: "Mending", Category: "breakable", MaxLevel: 1, Weight: 2, TreasureOnly: true},
		},
		Biomes: map[string]*content.Biome{
			"plains":       {DisplayName: "Plains", Category: "plains", Temperature: 0.8, Rainfall: 0.4, Precipitation: "rain", Color: 9286496},
			"desert":       {DisplayName: "Desert", Category: "desert", Temperature: 2, Precipitation: "none", Color: 16421912},
			"forest":       {DisplayName: "Forest", Category: "forest", Temperature: 0.7, Rainfall: 0.8, Precipitation: "rain", Color: 4215066},
			"snowy_tundra": {DisplayName: "Snowy Tundra", Category: "icy", Temperature: 0, Rainfall: 0.5, Precipitation: "snow", Color: 16777215},
		},
	}
}
