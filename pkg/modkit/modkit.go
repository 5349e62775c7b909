// Package modkit bundles one registration facade per content kind behind a
// single Kit, the object a mod receives to register everything it adds.
package modkit

import (
	"fmt"
	"log/slog"

	"github.com/mosbergapi/modkit/pkg/content"
	"github.com/mosbergapi/modkit/pkg/engine"
	"github.com/mosbergapi/modkit/pkg/id"
	"github.com/mosbergapi/modkit/pkg/loot"
	"github.com/mosbergapi/modkit/pkg/model"
	"github.com/mosbergapi/modkit/pkg/recipe"
	"github.com/mosbergapi/modkit/pkg/registry"
)

// DefaultNamespace is used when no WithNamespace option is given.
const DefaultNamespace = "mosbergapi"

// Kit is a set of registration facades sharing one namespace and one engine
// registry root. Construct one per mod namespace with New; all registration
// flows through its fields.
//
// Facade initialization order is the caller's business: content that refers
// to other content (a potion naming its status effects, a recipe naming its
// inputs) is registered after what it refers to, and nothing here enforces
// that.
type Kit struct {
	Blocks        *registry.Registrar[*content.Block]
	Items         *registry.Registrar[*content.Item]
	Entities      *registry.Registrar[*content.Entity]
	Sounds        *registry.Registrar[*content.Sound]
	Particles     *registry.Registrar[*content.Particle]
	StatusEffects *registry.Registrar[*content.StatusEffect]
	Potions       *registry.Registrar[*content.Potion]
	Enchantments  *registry.Registrar[*content.Enchantment]
	Biomes        *registry.Registrar[*content.Biome]
	Recipes       *registry.Registrar[recipe.Recipe]
	LootTables    *registry.Registrar[*loot.Table]
	Models        *registry.Registrar[*model.Model]

	namespace string
	log       *slog.Logger
}

// Option configures a Kit.
type Option func(*options)

type options struct {
	namespace string
	log       *slog.Logger
}

// WithNamespace sets the namespace all of the kit's facades register under.
func WithNamespace(namespace string) Option {
	return func(o *options) { o.namespace = namespace }
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(o *options) { o.log = log }
}

// New builds a Kit over the given engine registries. It fails with
// registry.ErrInvalidArgument when eng is nil or the namespace is not a
// valid identifier namespace.
func New(eng *engine.Registries, opts ...Option) (*Kit, error) {
	o := options{namespace: DefaultNamespace, log: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	if eng == nil {
		return nil, fmt.Errorf("modkit: nil engine registries: %w", registry.ErrInvalidArgument)
	}
	if err := id.ValidateNamespace(o.namespace); err != nil {
		return nil, fmt.Errorf("modkit: %s: %w", err, registry.ErrInvalidArgument)
	}

	ns, log := o.namespace, o.log
	return &Kit{
		Blocks:        registry.NewRegistrar[*content.Block]("block", ns, eng.Blocks, log),
		Items:         registry.NewRegistrar[*content.Item]("item", ns, eng.Items, log),
		Entities:      registry.NewRegistrar[*content.Entity]("entity", ns, eng.Entities, log),
		Sounds:        registry.NewRegistrar[*content.Sound]("sound", ns, eng.Sounds, log),
		Particles:     registry.NewRegistrar[*content.Particle]("particle", ns, eng.Particles, log),
		StatusEffects: registry.NewRegistrar[*content.StatusEffect]("status_effect", ns, eng.StatusEffects, log),
		Potions:       registry.NewRegistrar[*content.Potion]("potion", ns, eng.Potions, log),
		Enchantments:  registry.NewRegistrar[*content.Enchantment]("enchantment", ns, eng.Enchantments, log),
		Biomes:        registry.NewRegistrar[*content.Biome]("biome", ns, eng.Biomes, log),
		Recipes:       registry.NewRegistrar[recipe.Recipe]("recipe", ns, eng.Recipes, log),
		LootTables:    registry.NewRegistrar[*loot.Table]("loot_table", ns, eng.LootTables, log),
		Models:        registry.NewRegistrar[*model.Model]("model", ns, eng.Models, log),
		namespace:     ns,
		log:           log,
	}, nil
}

// Namespace returns the namespace the kit registers under.
func (k *Kit) Namespace() string { return k.namespace }

// Mod is a unit of installable content.
type Mod interface {
	// Register is called once with the kit to register the mod's content.
	Register(k *Kit) error
}

// ModFunc adapts a plain function to Mod.
type ModFunc func(k *Kit) error

func (f ModFunc) Register(k *Kit) error { return f(k) }

// Install runs the mod's registration against this kit.
func (k *Kit) Install(m Mod) error {
	if m == nil {
		return fmt.Errorf("modkit: nil mod: %w", registry.ErrInvalidArgument)
	}
	if err := m.Register(k); err != nil {
		return fmt.Errorf("install mod %T: %w", m, err)
	}
	k.log.Info("mod installed", "mod", fmt.Sprintf("%T", m), "namespace", k.namespace)
	return nil
}

// Initialize logs a summary line per facade plus a grand total and returns
// the total. It registers nothing and is safe to call repeatedly; repeat
// calls re-log the same counts and change no state.
func (k *Kit) Initialize() int {
	total := 0
	for _, f := range k.facades() {
		k.log.Info("content initialized", "kind", f.kind, "count", f.count)
		total += f.count
	}
	k.log.Info("initialization complete", "namespace", k.namespace, "total", total)
	return total
}

type facadeSummary struct {
	kind  string
	count int
}

func (k *Kit) facades() []facadeSummary {
	return []facadeSummary{
		{k.Blocks.Kind(), k.Blocks.Len()},
		{k.Items.Kind(), k.Items.Len()},
		{k.Entities.Kind(), k.Entities.Len()},
		{k.Sounds.Kind(), k.Sounds.Len()},
		{k.Particles.Kind(), k.Particles.Len()},
		{k.StatusEffects.Kind(), k.StatusEffects.Len()},
		{k.Potions.Kind(), k.Potions.Len()},
		{k.Enchantments.Kind(), k.Enchantments.Len()},
		{k.Biomes.Kind(), k.Biomes.Len()},
		{k.Recipes.Kind(), k.Recipes.Len()},
		{k.LootTables.Kind(), k.LootTables.Len()},
		{k.Models.Kind(), k.Models.Len()},
	}
}
