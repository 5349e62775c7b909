package model_test

import (
	"strings"
	"testing"

	"github.com/mosbergapi/modkit/pkg/model"
)

// --- Builder Tests ---

func TestBuildTwoParts(t *testing.T) {
	m := model.NewBuilder().
		Part("body").UV(0, 16).Cuboid(-4, 0, -2, 8, 12, 4).
		Part("head").Pivot(0, 12, 0).Cuboid(-4, 0, -4, 8, 8, 8).
		Build()

	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	parts := m.Parts()

	body := parts[0]
	if body.Name != "body" {
		t.Errorf("parts[0].Name = %q, want body", body.Name)
	}
	if len(body.Cuboids) != 1 {
		t.Fatalf("body has %d cuboids, want 1", len(body.Cuboids))
	}
	if c := body.Cuboids[0]; c.U != 0 || c.V != 16 {
		t.Errorf("body cuboid uv = (%d, %d), want (0, 16)", c.U, c.V)
	}
	if c := body.Cuboids[0]; c.Origin != (model.Vec3{X: -4, Y: 0, Z: -2}) || c.Size != (model.Vec3{X: 8, Y: 12, Z: 4}) {
		t.Errorf("body cuboid geometry = %+v", c)
	}

	head := parts[1]
	if head.Name != "head" {
		t.Errorf("parts[1].Name = %q, want head", head.Name)
	}
	if head.Pivot != (model.Vec3{X: 0, Y: 12, Z: 0}) {
		t.Errorf("head.Pivot = %+v, want (0, 12, 0)", head.Pivot)
	}
	if c := head.Cuboids[0]; c.U != 0 || c.V != 0 {
		t.Errorf("uv carried across Part: head cuboid uv = (%d, %d), want (0, 0)", c.U, c.V)
	}
}

func TestUVAppliesToSubsequentCuboids(t *testing.T) {
	m := model.NewBuilder().
		Part("arm").
		Cuboid(0, 0, 0, 2, 8, 2).
		UV(40, 16).
		Cuboid(0, 0, 0, 2, 8, 2).
		Cuboid(2, 0, 0, 2, 8, 2).
		Build()

	cuboids := m.Parts()[0].Cuboids
	if len(cuboids) != 3 {
		t.Fatalf("got %d cuboids, want 3", len(cuboids))
	}
	if cuboids[0].U != 0 || cuboids[0].V != 0 {
		t.Errorf("cuboid before UV has uv (%d, %d), want (0, 0)", cuboids[0].U, cuboids[0].V)
	}
	for i, c := range cuboids[1:] {
		if c.U != 40 || c.V != 16 {
			t.Errorf("cuboid %d after UV has uv (%d, %d), want (40, 16)", i+1, c.U, c.V)
		}
	}
}

func TestBuildZeroParts(t *testing.T) {
	m := model.NewBuilder().Build()
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
	if parts := m.Parts(); len(parts) != 0 {
		t.Errorf("Parts() = %v, want empty", parts)
	}
}

func TestPartsIsACopy(t *testing.T) {
	m := model.NewBuilder().Part("body").Cuboid(0, 0, 0, 1, 1, 1).Build()

	parts := m.Parts()
	parts[0].Name = "mangled"
	parts[0].Cuboids[0].U = 99

	fresh := m.Parts()
	if fresh[0].Name != "body" {
		t.Errorf("mutating the returned slice changed the model's part name")
	}
	if fresh[0].Cuboids[0].U != 0 {
		t.Errorf("mutating the returned slice changed the model's cuboids")
	}
}

func mustPanic(t *testing.T, wantSubstr string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("call did not panic")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, wantSubstr) {
			t.Fatalf("panic = %v, want message containing %q", r, wantSubstr)
		}
	}()
	fn()
}

func TestBuilderPanicsAfterBuild(t *testing.T) {
	b := model.NewBuilder().Part("body")
	b.Build()

	mustPanic(t, "single-use", func() { b.Part("head") })
	mustPanic(t, "single-use", func() { b.UV(0, 0) })
	mustPanic(t, "single-use", func() { b.Pivot(0, 0, 0) })
	mustPanic(t, "single-use", func() { b.Cuboid(0, 0, 0, 1, 1, 1) })
	mustPanic(t, "single-use", func() { b.Build() })
}

func TestBuilderPanicsBeforeFirstPart(t *testing.T) {
	mustPanic(t, "before Part", func() { model.NewBuilder().UV(0, 0) })
	mustPanic(t, "before Part", func() { model.NewBuilder().Pivot(0, 0, 0) })
	mustPanic(t, "before Part", func() { model.NewBuilder().Cuboid(0, 0, 0, 1, 1, 1) })
}
