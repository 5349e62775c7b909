// Package loot describes loot tables in the engine's data-pack form:
// a table holds pools, a pool rolls some entries, entries yield items,
// optionally filtered by conditions and transformed by functions.
package loot

import (
	"encoding/json"

	"github.com/mosbergapi/modkit/pkg/id"
)

// Table kinds understood by the engine.
var (
	TypeBlock  = id.MustParse("minecraft:block")
	TypeEntity = id.MustParse("minecraft:entity")
	TypeChest  = id.MustParse("minecraft:chest")
	TypeEmpty  = id.MustParse("minecraft:empty")
)

// Entry kinds.
var (
	EntryItem    = id.MustParse("minecraft:item")
	EntryTable   = id.MustParse("minecraft:loot_table")
	EntryNothing = id.MustParse("minecraft:empty")
)

type Table struct {
	Type  id.ID  `json:"type,omitzero"`
	Pools []Pool `json:"pools,omitempty"`
}

type Pool struct {
	Rolls      Rolls       `json:"rolls"`
	Entries    []Entry     `json:"entries"`
	Conditions []Condition `json:"conditions,omitempty"`
	Functions  []Function  `json:"functions,omitempty"`
}

type Entry struct {
	Type      id.ID      `json:"type,omitzero"`
	Name      id.ID      `json:"name,omitzero"`
	Weight    int        `json:"weight,omitempty"`
	Functions []Function `json:"functions,omitempty"`
}

// Condition and Function are open-ended engine objects; the convenience
// constructors below cover the common ones and anything else can be written
// literally.
type Condition map[string]any

type Function map[string]any

// Rolls is a roll count: constant when Min == Max, otherwise a uniform
// range. It marshals to a bare number or a {min, max} object accordingly.
type Rolls struct {
	Min int
	Max int
}

func ConstantRolls(n int) Rolls       { return Rolls{Min: n, Max: n} }
func UniformRolls(min, max int) Rolls { return Rolls{Min: min, Max: max} }

func (r Rolls) MarshalJSON() ([]byte, error) {
	if r.Min == r.Max {
		return json.Marshal(r.Min)
	}
	return json.Marshal(struct {
		Min int `json:"min"`
		Max int `json:"max"`
	}{r.Min, r.Max})
}

func (r *Rolls) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		r.Min, r.Max = n, n
		return nil
	}
	var span struct {
		Min int `json:"min"`
		Max int `json:"max"`
	}
	if err := json.Unmarshal(data, &span); err != nil {
		return err
	}
	r.Min, r.Max = span.Min, span.Max
	return nil
}

// SurvivesExplosion gates a drop on the block not being blown up.
func SurvivesExplosion() Condition {
	return Condition{"condition": "minecraft:survives_explosion"}
}

// SetCount yields between min and max of the entry's item.
func SetCount(min, max int) Function {
	var count any = min
	if min != max {
		count = map[string]any{"min": min, "max": max}
	}
	return Function{"function": "minecraft:set_count", "count": count}
}

// DropSelf is the standard block table: the block drops its own item,
// provided it survives the explosion that freed it.
func DropSelf(block id.ID) *Table {
	return &Table{
		Type: TypeBlock,
		Pools: []Pool{{
			Rolls:      ConstantRolls(1),
			Entries:    []Entry{{Type: EntryItem, Name: block}},
			Conditions: []Condition{SurvivesExplosion()},
		}},
	}
}

// DropItem is a block table dropping between min and max of item, the way
// ores drop their refined form.
func DropItem(item id.ID, min, max int) *Table {
	entry := Entry{Type: EntryItem, Name: item}
	if min != 1 || max != 1 {
		entry.Functions = []Function{SetCount(min, max)}
	}
	return &Table{
		Type: TypeBlock,
		Pools: []Pool{{
			Rolls:      ConstantRolls(1),
			Entries:    []Entry{entry},
			Conditions: []Condition{SurvivesExplosion()},
		}},
	}
}
