// Package content holds the descriptor types mod code registers: plain data
// structs describing blocks, items, entities and the rest. Zero values are
// usable; the engine applies its own defaults for anything left unset.
package content

type Block struct {
	DisplayName string
	Material    string
	Hardness    float64
	Resistance  float64
	LightLevel  int
	Transparent bool
	Diggable    bool

	// Properties holds block-state properties and their default values
	// (facing, lit, age). Values are plain strings, bools and float64s.
	Properties map[string]any
}
