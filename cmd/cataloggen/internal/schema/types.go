// Package schema mirrors the PrismarineJS minecraft-data registry entries
// cataloggen consumes. Fields the catalogs do not carry are omitted;
// json.Unmarshal drops them.
package schema

import (
	"encoding/json"
	"fmt"
)

type Block struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"displayName"`
	Hardness    *float64 `json:"hardness"`
	Resistance  float64  `json:"resistance"`
	Material    string   `json:"material"`
	EmitLight   int      `json:"emitLight"`
	Transparent bool     `json:"transparent"`
	Diggable    bool     `json:"diggable"`
}

type Item struct {
	Name          string `json:"name"`
	DisplayName   string `json:"displayName"`
	StackSize     int    `json:"stackSize"`
	MaxDurability int    `json:"maxDurability"`
}

type Entity struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"displayName"`
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	Width       *float64 `json:"width"`
	Height      *float64 `json:"height"`
}

type Effect struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Type        string `json:"type"`
}

type Particle struct {
	Name string `json:"name"`
}

type Enchantment struct {
	Name         string `json:"name"`
	DisplayName  string `json:"displayName"`
	MaxLevel     int    `json:"maxLevel"`
	Category     string `json:"category"`
	Weight       int    `json:"weight"`
	TreasureOnly bool   `json:"treasureOnly"`
	Curse        bool   `json:"curse"`
}

type Biome struct {
	Name          string  `json:"name"`
	DisplayName   string  `json:"displayName"`
	Category      string  `json:"category"`
	Temperature   float64 `json:"temperature"`
	Rainfall      float64 `json:"rainfall"`
	Precipitation string  `json:"precipitation"`
	Color         int     `json:"color"`
}

func LoadJSON[T any](data []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return items, nil
}
