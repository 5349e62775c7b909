package contentpack

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// manifest is the gohcl decode target for one manifest file.
type manifest struct {
	Namespace    string           `hcl:"namespace,optional"`
	Blocks       []blockDef       `hcl:"block,block"`
	Items        []itemDef        `hcl:"item,block"`
	Entities     []entityDef      `hcl:"entity,block"`
	Sounds       []soundDef       `hcl:"sound,block"`
	Particles    []particleDef    `hcl:"particle,block"`
	Effects      []effectDef      `hcl:"status_effect,block"`
	Potions      []potionDef      `hcl:"potion,block"`
	Enchantments []enchantmentDef `hcl:"enchantment,block"`
	Biomes       []biomeDef       `hcl:"biome,block"`
}

type blockDef struct {
	Name        string    `hcl:"name,label"`
	DisplayName string    `hcl:"display_name,optional"`
	Material    string    `hcl:"material,optional"`
	Hardness    float64   `hcl:"hardness,optional"`
	Resistance  float64   `hcl:"resistance,optional"`
	LightLevel  int       `hcl:"light_level,optional"`
	Transparent bool      `hcl:"transparent,optional"`
	Diggable    bool      `hcl:"diggable,optional"`
	Properties  cty.Value `hcl:"properties,optional"`
}

type itemDef struct {
	Name          string `hcl:"name,label"`
	DisplayName   string `hcl:"display_name,optional"`
	StackSize     int    `hcl:"stack_size,optional"`
	MaxDurability int    `hcl:"max_durability,optional"`
	Rarity        string `hcl:"rarity,optional"`
}

type entityDef struct {
	Name        string  `hcl:"name,label"`
	DisplayName string  `hcl:"display_name,optional"`
	Category    string  `hcl:"category,optional"`
	Width       float64 `hcl:"width,optional"`
	Height      float64 `hcl:"height,optional"`
	MaxHealth   float64 `hcl:"max_health,optional"`
	Fireproof   bool    `hcl:"fireproof,optional"`
}

type soundDef struct {
	Name     string   `hcl:"name,label"`
	Subtitle string   `hcl:"subtitle,optional"`
	Paths    []string `hcl:"paths,optional"`
}

type particleDef struct {
	Name        string `hcl:"name,label"`
	DisplayName string `hcl:"display_name,optional"`
}

type effectDef struct {
	Name        string `hcl:"name,label"`
	DisplayName string `hcl:"display_name,optional"`
	Type        string `hcl:"type,optional"`
	Color       int    `hcl:"color,optional"`
}

type potionDef struct {
	Name        string              `hcl:"name,label"`
	DisplayName string              `hcl:"display_name,optional"`
	Effects     []effectInstanceDef `hcl:"effect,block"`
}

type effectInstanceDef struct {
	ID        string `hcl:"id"`
	Duration  int    `hcl:"duration,optional"`
	Amplifier int    `hcl:"amplifier,optional"`
}

type enchantmentDef struct {
	Name         string `hcl:"name,label"`
	DisplayName  string `hcl:"display_name,optional"`
	Category     string `hcl:"category,optional"`
	MaxLevel     int    `hcl:"max_level,optional"`
	Weight       int    `hcl:"weight,optional"`
	TreasureOnly bool   `hcl:"treasure_only,optional"`
	Curse        bool   `hcl:"curse,optional"`
}

type biomeDef struct {
	Name          string  `hcl:"name,label"`
	DisplayName   string  `hcl:"display_name,optional"`
	Category      string  `hcl:"category,optional"`
	Temperature   float64 `hcl:"temperature,optional"`
	Rainfall      float64 `hcl:"rainfall,optional"`
	Precipitation string  `hcl:"precipitation,optional"`
	Color         int     `hcl:"color,optional"`
}

// propertiesToGo converts a decoded properties object into plain Go values:
// strings, bools, float64s, nested slices and maps.
func propertiesToGo(v cty.Value) (map[string]any, error) {
	if v == cty.NilVal || v.IsNull() {
		return nil, nil
	}
	if !v.Type().IsObjectType() && !v.Type().IsMapType() {
		return nil, fmt.Errorf("properties must be an object, got %s", v.Type().FriendlyName())
	}
	converted, err := ctyToGo(v)
	if err != nil {
		return nil, fmt.Errorf("properties: %w", err)
	}
	return converted.(map[string]any), nil
}

// ctyToGo recursively converts a cty.Value to its natural Go counterpart.
func ctyToGo(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		f, _ := v.AsBigFloat().Float64()
		return f, nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		out := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			converted, err := ctyToGo(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, converted)
		}
		return out, nil

	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]any)
		for it := v.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			converted, err := ctyToGo(elem)
			if err != nil {
				return nil, fmt.Errorf("attribute %q: %w", key.AsString(), err)
			}
			out[key.AsString()] = converted
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
	}
}
