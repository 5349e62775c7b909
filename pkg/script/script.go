// Package script runs Lua content scripts against a Kit. Scripts see a
// modkit global with one registration function per content kind:
//
//	modkit.register_block("ruby_block", {
//	  display_name = "Block of Ruby",
//	  hardness     = 5,
//	  properties   = { lit = false },
//	})
//	modkit.register_item("ruby", { stack_size = 64 })
//
// A registration failure aborts the script with a Lua error. Numbers cross
// the boundary as float64, tables as map[string]any or []any.
package script

import (
	"fmt"
	"log/slog"

	"github.com/Shopify/go-lua"

	"github.com/mosbergapi/modkit/pkg/content"
	"github.com/mosbergapi/modkit/pkg/id"
	"github.com/mosbergapi/modkit/pkg/modkit"
)

// Runner executes content scripts. Each run gets a fresh interpreter state;
// only the Kit carries over. Runs share the Kit's single-threaded startup
// model.
type Runner struct {
	kit *modkit.Kit
	log *slog.Logger
}

// NewRunner returns a Runner that registers into kit. A nil log falls back
// to slog.Default().
func NewRunner(kit *modkit.Kit, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{kit: kit, log: log}
}

// Run executes src as one script. The name only labels errors and logs.
func (r *Runner) Run(name, src string) error {
	state, rc := r.newState()
	if err := lua.DoString(state, src); err != nil {
		return rc.wrap(name, err)
	}
	r.log.Info("script ran", "script", name)
	return nil
}

// RunFile executes the script at path.
func (r *Runner) RunFile(path string) error {
	state, rc := r.newState()
	if err := lua.LoadFile(state, path, ""); err != nil {
		return fmt.Errorf("load script %s: %w", path, err)
	}
	if err := state.ProtectedCall(0, 0, 0); err != nil {
		return rc.wrap(path, err)
	}
	r.log.Info("script ran", "script", path)
	return nil
}

func (r *Runner) newState() (*lua.State, *runContext) {
	state := lua.NewState()
	lua.OpenLibraries(state)

	rc := &runContext{kit: r.kit}
	state.NewTable()
	lua.SetFunctions(state, []lua.RegistryFunction{
		{Name: "register_block", Function: rc.registerBlock},
		{Name: "register_item", Function: rc.registerItem},
		{Name: "register_entity", Function: rc.registerEntity},
		{Name: "register_sound", Function: rc.registerSound},
		{Name: "register_particle", Function: rc.registerParticle},
		{Name: "register_status_effect", Function: rc.registerStatusEffect},
		{Name: "register_potion", Function: rc.registerPotion},
		{Name: "register_enchantment", Function: rc.registerEnchantment},
		{Name: "register_biome", Function: rc.registerBiome},
		{Name: "namespace", Function: rc.namespace},
	}, 0)
	state.SetGlobal("modkit")
	return state, rc
}

// runContext carries the Kit into the bindings and keeps the first Go-side
// registration error, so callers get the original sentinel back instead of
// its stringified Lua form.
type runContext struct {
	kit *modkit.Kit
	err error
}

func (rc *runContext) wrap(name string, luaErr error) error {
	if rc.err != nil {
		return fmt.Errorf("script %s: %w", name, rc.err)
	}
	return fmt.Errorf("script %s: %w", name, luaErr)
}

// fail records err and raises it as a Lua error. It does not return.
func (rc *runContext) fail(state *lua.State, err error) {
	if rc.err == nil {
		rc.err = err
	}
	lua.Errorf(state, "%s", err.Error())
}

func (rc *runContext) namespace(state *lua.State) int {
	state.PushString(rc.kit.Namespace())
	return 1
}

func (rc *runContext) registerBlock(state *lua.State) int {
	name := lua.CheckString(state, 1)
	opts := optionalTable(state, 2)
	block := &content.Block{
		DisplayName: optString(opts, "display_name"),
		Material:    optString(opts, "material"),
		Hardness:    optNumber(opts, "hardness"),
		Resistance:  optNumber(opts, "resistance"),
		LightLevel:  optInt(opts, "light_level"),
		Transparent: optBool(opts, "transparent"),
		Diggable:    optBool(opts, "diggable"),
		Properties:  optMap(opts, "properties"),
	}
	if _, err := rc.kit.Blocks.Register(name, block); err != nil {
		rc.fail(state, err)
		return 0
	}
	return 0
}

func (rc *runContext) registerItem(state *lua.State) int {
	name := lua.CheckString(state, 1)
	opts := optionalTable(state, 2)
	item := &content.Item{
		DisplayName:   optString(opts, "display_name"),
		StackSize:     optInt(opts, "stack_size"),
		MaxDurability: optInt(opts, "max_durability"),
		Rarity:        optString(opts, "rarity"),
	}
	if _, err := rc.kit.Items.Register(name, item); err != nil {
		rc.fail(state, err)
		return 0
	}
	return 0
}

func (rc *runContext) registerEntity(state *lua.State) int {
	name := lua.CheckString(state, 1)
	opts := optionalTable(state, 2)
	entity := &content.Entity{
		DisplayName: optString(opts, "display_name"),
		Category:    optString(opts, "category"),
		Width:       optNumber(opts, "width"),
		Height:      optNumber(opts, "height"),
		MaxHealth:   optNumber(opts, "max_health"),
		Fireproof:   optBool(opts, "fireproof"),
	}
	if _, err := rc.kit.Entities.Register(name, entity); err != nil {
		rc.fail(state, err)
		return 0
	}
	return 0
}

func (rc *runContext) registerSound(state *lua.State) int {
	name := lua.CheckString(state, 1)
	opts := optionalTable(state, 2)
	sound := &content.Sound{
		Subtitle: optString(opts, "subtitle"),
		Paths:    optStrings(opts, "paths"),
	}
	if _, err := rc.kit.Sounds.Register(name, sound); err != nil {
		rc.fail(state, err)
		return 0
	}
	return 0
}

func (rc *runContext) registerParticle(state *lua.State) int {
	name := lua.CheckString(state, 1)
	opts := optionalTable(state, 2)
	particle := &content.Particle{DisplayName: optString(opts, "display_name")}
	if _, err := rc.kit.Particles.Register(name, particle); err != nil {
		rc.fail(state, err)
		return 0
	}
	return 0
}

func (rc *runContext) registerStatusEffect(state *lua.State) int {
	name := lua.CheckString(state, 1)
	opts := optionalTable(state, 2)
	effect := &content.StatusEffect{
		DisplayName: optString(opts, "display_name"),
		Type:        optString(opts, "type"),
		Color:       optInt(opts, "color"),
	}
	if _, err := rc.kit.StatusEffects.Register(name, effect); err != nil {
		rc.fail(state, err)
		return 0
	}
	return 0
}

func (rc *runContext) registerPotion(state *lua.State) int {
	name := lua.CheckString(state, 1)
	opts := optionalTable(state, 2)
	potion := &content.Potion{DisplayName: optString(opts, "display_name")}

	effects, _ := opts["effects"].([]any)
	for _, raw := range effects {
		entry, ok := raw.(map[string]any)
		if !ok {
			rc.fail(state, fmt.Errorf("potion %q: effects entries must be tables", name))
			return 0
		}
		effectID, err := id.Parse(optString(entry, "id"))
		if err != nil {
			rc.fail(state, fmt.Errorf("potion %q: effect id: %w", name, err))
			return 0
		}
		potion.Effects = append(potion.Effects, content.EffectInstance{
			Effect:    effectID,
			Duration:  optInt(entry, "duration"),
			Amplifier: optInt(entry, "amplifier"),
		})
	}

	if _, err := rc.kit.Potions.Register(name, potion); err != nil {
		rc.fail(state, err)
		return 0
	}
	return 0
}

func (rc *runContext) registerEnchantment(state *lua.State) int {
	name := lua.CheckString(state, 1)
	opts := optionalTable(state, 2)
	ench := &content.Enchantment{
		DisplayName:  optString(opts, "display_name"),
		Category:     optString(opts, "category"),
		MaxLevel:     optInt(opts, "max_level"),
		Weight:       optInt(opts, "weight"),
		TreasureOnly: optBool(opts, "treasure_only"),
		Curse:        optBool(opts, "curse"),
	}
	if _, err := rc.kit.Enchantments.Register(name, ench); err != nil {
		rc.fail(state, err)
		return 0
	}
	return 0
}

func (rc *runContext) registerBiome(state *lua.State) int {
	name := lua.CheckString(state, 1)
	opts := optionalTable(state, 2)
	biome := &content.Biome{
		DisplayName:   optString(opts, "display_name"),
		Category:      optString(opts, "category"),
		Temperature:   optNumber(opts, "temperature"),
		Rainfall:      optNumber(opts, "rainfall"),
		Precipitation: optString(opts, "precipitation"),
		Color:         optInt(opts, "color"),
	}
	if _, err := rc.kit.Biomes.Register(name, biome); err != nil {
		rc.fail(state, err)
		return 0
	}
	return 0
}
