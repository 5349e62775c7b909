package model

// Builder accumulates parts for one Model. Methods return the builder for
// chaining:
//
//	m := model.NewBuilder().
//		Part("body").UV(0, 16).Cuboid(-4, 0, -2, 8, 12, 4).
//		Part("head").Pivot(0, 12, 0).Cuboid(-4, 0, -4, 8, 8, 8).
//		Build()
//
// A Builder is not safe for concurrent use, and it is single-use: Build
// finalizes it, and any later call panics. Calling UV, Pivot or Cuboid
// before the first Part panics as well; geometry numbers themselves are
// plain data and never validated.
type Builder struct {
	parts   []Part
	current Part
	open    bool
	u, v    int
	built   bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Part finishes the part in progress, if any, and opens a new one named
// name. The texture offset resets to (0, 0) for the new part.
func (b *Builder) Part(name string) *Builder {
	b.mustBeLive()
	b.closePart()
	b.current = Part{Name: name}
	b.open = true
	b.u, b.v = 0, 0
	return b
}

// UV sets the texture offset applied to cuboids appended after this call,
// until the next UV or Part.
func (b *Builder) UV(u, v int) *Builder {
	b.mustBeLive()
	b.mustHavePart("UV")
	b.u, b.v = u, v
	return b
}

// Pivot sets the current part's pivot point.
func (b *Builder) Pivot(x, y, z float64) *Builder {
	b.mustBeLive()
	b.mustHavePart("Pivot")
	b.current.Pivot = Vec3{X: x, Y: y, Z: z}
	return b
}

// Cuboid appends a box to the current part with origin (x, y, z) and size
// (w, h, d), stamped with the current texture offset.
func (b *Builder) Cuboid(x, y, z, w, h, d float64) *Builder {
	b.mustBeLive()
	b.mustHavePart("Cuboid")
	b.current.Cuboids = append(b.current.Cuboids, Cuboid{
		Origin: Vec3{X: x, Y: y, Z: z},
		Size:   Vec3{X: w, Y: h, Z: d},
		U:      b.u,
		V:      b.v,
	})
	return b
}

// Build finishes the part in progress and returns the finalized Model. A
// builder that never opened a part yields a model with zero parts. Build is
// terminal: the builder cannot be used again.
func (b *Builder) Build() *Model {
	b.mustBeLive()
	b.closePart()
	b.built = true
	m := &Model{parts: b.parts}
	b.parts = nil
	return m
}

func (b *Builder) closePart() {
	if b.open {
		b.parts = append(b.parts, b.current)
		b.open = false
	}
}

func (b *Builder) mustBeLive() {
	if b.built {
		panic("model: builder already built; builders are single-use")
	}
}

func (b *Builder) mustHavePart(method string) {
	if !b.open {
		panic("model: " + method + " called before Part")
	}
}
