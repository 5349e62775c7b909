// Package contentpack loads declarative HCL content manifests and registers
// their contents into a Kit. A manifest is a flat file of content blocks:
//
//	namespace = "gemcraft"
//
//	block "ruby_block" {
//	  display_name = "Ruby Block"
//	  material     = "rock"
//	  hardness     = 5
//	  properties   = { lit = false }
//	}
//
//	item "ruby" {
//	  display_name = "Ruby"
//	  stack_size   = 64
//	}
package contentpack

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/mosbergapi/modkit/pkg/content"
	"github.com/mosbergapi/modkit/pkg/id"
	"github.com/mosbergapi/modkit/pkg/modkit"
)

// Pack is a parsed manifest, ready to apply to a Kit.
type Pack struct {
	manifest manifest
}

// Namespace returns the namespace the manifest declares, or "" if it
// declares none.
func (p *Pack) Namespace() string {
	return p.manifest.Namespace
}

// Parse decodes manifest source. The filename only labels diagnostics.
func Parse(filename string, src []byte) (*Pack, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse manifest %s: %w", filename, diags)
	}

	var m manifest
	if diags := gohcl.DecodeBody(file.Body, nil, &m); diags.HasErrors() {
		return nil, fmt.Errorf("decode manifest %s: %w", filename, diags)
	}
	return &Pack{manifest: m}, nil
}

// LoadFile parses one manifest file.
func LoadFile(path string) (*Pack, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(path, src)
}

// LoadDir parses every .hcl file directly under dir, in name order, and
// merges them into one Pack. Later files may not redeclare the namespace
// differently.
func LoadDir(dir string) (*Pack, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read manifest dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".hcl" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	merged := &Pack{}
	for _, name := range names {
		p, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		if err := merged.merge(p, name); err != nil {
			return nil, err
		}
	}
	return merged, nil
}

func (p *Pack) merge(other *Pack, label string) error {
	if other.manifest.Namespace != "" {
		if p.manifest.Namespace != "" && p.manifest.Namespace != other.manifest.Namespace {
			return fmt.Errorf("manifest %s: namespace %q conflicts with %q", label, other.manifest.Namespace, p.manifest.Namespace)
		}
		p.manifest.Namespace = other.manifest.Namespace
	}
	p.manifest.Blocks = append(p.manifest.Blocks, other.manifest.Blocks...)
	p.manifest.Items = append(p.manifest.Items, other.manifest.Items...)
	p.manifest.Entities = append(p.manifest.Entities, other.manifest.Entities...)
	p.manifest.Sounds = append(p.manifest.Sounds, other.manifest.Sounds...)
	p.manifest.Particles = append(p.manifest.Particles, other.manifest.Particles...)
	p.manifest.Effects = append(p.manifest.Effects, other.manifest.Effects...)
	p.manifest.Potions = append(p.manifest.Potions, other.manifest.Potions...)
	p.manifest.Enchantments = append(p.manifest.Enchantments, other.manifest.Enchantments...)
	p.manifest.Biomes = append(p.manifest.Biomes, other.manifest.Biomes...)
	return nil
}

// Apply registers everything in the pack into kit, in declaration order. A
// manifest that declares a namespace must match the kit's; a mismatch fails
// before anything is registered.
func (p *Pack) Apply(kit *modkit.Kit) error {
	if ns := p.manifest.Namespace; ns != "" && ns != kit.Namespace() {
		return fmt.Errorf("manifest namespace %q does not match kit namespace %q", ns, kit.Namespace())
	}

	for _, b := range p.manifest.Blocks {
		props, err := propertiesToGo(b.Properties)
		if err != nil {
			return fmt.Errorf("block %q: %w", b.Name, err)
		}
		block := &content.Block{
			DisplayName: b.DisplayName,
			Material:    b.Material,
			Hardness:    b.Hardness,
			Resistance:  b.Resistance,
			LightLevel:  b.LightLevel,
			Transparent: b.Transparent,
			Diggable:    b.Diggable,
			Properties:  props,
		}
		if _, err := kit.Blocks.Register(b.Name, block); err != nil {
			return err
		}
	}

	for _, i := range p.manifest.Items {
		item := &content.Item{
			DisplayName:   i.DisplayName,
			StackSize:     i.StackSize,
			MaxDurability: i.MaxDurability,
			Rarity:        i.Rarity,
		}
		if _, err := kit.Items.Register(i.Name, item); err != nil {
			return err
		}
	}

	for _, e := range p.manifest.Entities {
		entity := &content.Entity{
			DisplayName: e.DisplayName,
			Category:    e.Category,
			Width:       e.Width,
			Height:      e.Height,
			MaxHealth:   e.MaxHealth,
			Fireproof:   e.Fireproof,
		}
		if _, err := kit.Entities.Register(e.Name, entity); err != nil {
			return err
		}
	}

	for _, s := range p.manifest.Sounds {
		if _, err := kit.Sounds.Register(s.Name, &content.Sound{Subtitle: s.Subtitle, Paths: s.Paths}); err != nil {
			return err
		}
	}

	for _, pt := range p.manifest.Particles {
		if _, err := kit.Particles.Register(pt.Name, &content.Particle{DisplayName: pt.DisplayName}); err != nil {
			return err
		}
	}

	for _, e := range p.manifest.Effects {
		effect := &content.StatusEffect{DisplayName: e.DisplayName, Type: e.Type, Color: e.Color}
		if _, err := kit.StatusEffects.Register(e.Name, effect); err != nil {
			return err
		}
	}

	for _, pot := range p.manifest.Potions {
		potion := &content.Potion{DisplayName: pot.DisplayName}
		for _, ef := range pot.Effects {
			effectID, err := id.Parse(ef.ID)
			if err != nil {
				return fmt.Errorf("potion %q: effect id: %w", pot.Name, err)
			}
			potion.Effects = append(potion.Effects, content.EffectInstance{
				Effect:    effectID,
				Duration:  ef.Duration,
				Amplifier: ef.Amplifier,
			})
		}
		if _, err := kit.Potions.Register(pot.Name, potion); err != nil {
			return err
		}
	}

	for _, e := range p.manifest.Enchantments {
		ench := &content.Enchantment{
			DisplayName:  e.DisplayName,
			Category:     e.Category,
			MaxLevel:     e.MaxLevel,
			Weight:       e.Weight,
			TreasureOnly: e.TreasureOnly,
			Curse:        e.Curse,
		}
		if _, err := kit.Enchantments.Register(e.Name, ench); err != nil {
			return err
		}
	}

	for _, b := range p.manifest.Biomes {
		biome := &content.Biome{
			DisplayName:   b.DisplayName,
			Category:      b.Category,
			Temperature:   b.Temperature,
			Rainfall:      b.Rainfall,
			Precipitation: b.Precipitation,
			Color:         b.Color,
		}
		if _, err := kit.Biomes.Register(b.Name, biome); err != nil {
			return err
		}
	}

	return nil
}
