// Package model builds part-based geometry descriptors. A Builder
// accumulates named parts and their cuboids, then finalizes them into an
// immutable Model. Builders are single-use: after Build every further call
// panics.
package model

// Vec3 is a plain coordinate triple.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Cuboid is one textured box inside a part. U and V are the texture offset
// that was current when the cuboid was appended.
type Cuboid struct {
	Origin Vec3 `json:"origin"`
	Size   Vec3 `json:"size"`
	U      int  `json:"u"`
	V      int  `json:"v"`
}

// Part is a named group of cuboids sharing a pivot.
type Part struct {
	Name    string   `json:"name"`
	Pivot   Vec3     `json:"pivot"`
	Cuboids []Cuboid `json:"cuboids,omitempty"`
}

// Model is finalized geometry. It never changes after Build.
type Model struct {
	parts []Part
}

// Parts returns the model's parts in build order. The result is a copy; the
// caller can do anything with it.
func (m *Model) Parts() []Part {
	parts := make([]Part, len(m.parts))
	copy(parts, m.parts)
	for i := range parts {
		cuboids := make([]Cuboid, len(parts[i].Cuboids))
		copy(cuboids, parts[i].Cuboids)
		parts[i].Cuboids = cuboids
	}
	return parts
}

// Len returns the number of parts.
func (m *Model) Len() int { return len(m.parts) }
