package vanilla_test

import (
	"errors"
	"testing"

	"github.com/mosbergapi/modkit/pkg/engine"
	"github.com/mosbergapi/modkit/pkg/id"
	"github.com/mosbergapi/modkit/pkg/registry"
	"github.com/mosbergapi/modkit/pkg/vanilla"
)

func loadCore(t *testing.T) *vanilla.Catalog {
	t.Helper()
	c, err := vanilla.Load("core")
	if err != nil {
		t.Fatalf("core should be registered via init(), got error: %v", err)
	}
	return c
}

// --- Catalog Registry Tests ---

func TestLoad_UnknownCatalog(t *testing.T) {
	_, err := vanilla.Load("nonexistent-catalog")
	if err == nil {
		t.Fatal("expected error for unknown catalog, got nil")
	}
}

func TestRegisterAndLoad(t *testing.T) {
	called := false
	vanilla.Register("test-catalog", func() *vanilla.Catalog {
		called = true
		return &vanilla.Catalog{Name: "test-catalog"}
	})

	c, err := vanilla.Load("test-catalog")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c == nil {
		t.Fatal("expected non-nil Catalog")
	}
	if !called {
		t.Fatal("factory function was not called")
	}
}

func TestRegistered(t *testing.T) {
	names := vanilla.Registered()
	found := false
	for _, n := range names {
		if n == "core" {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected 'core' in registered catalogs, got %v", names)
	}
}

// --- Core Catalog Tests ---

func TestCore_Blocks(t *testing.T) {
	c := loadCore(t)

	stone, ok := c.Blocks["stone"]
	if !ok {
		t.Fatal("expected to find block 'stone'")
	}
	if stone.DisplayName != "Stone" {
		t.Errorf("expected display name 'Stone', got %q", stone.DisplayName)
	}
	if stone.Hardness != 1.5 {
		t.Errorf("expected hardness 1.5, got %v", stone.Hardness)
	}

	glow, ok := c.Blocks["glowstone"]
	if !ok {
		t.Fatal("expected to find block 'glowstone'")
	}
	if glow.LightLevel != 15 {
		t.Errorf("expected light level 15, got %d", glow.LightLevel)
	}
}

func TestCore_Entities(t *testing.T) {
	c := loadCore(t)

	creeper, ok := c.Entities["creeper"]
	if !ok {
		t.Fatal("expected to find entity 'creeper'")
	}
	if creeper.Category != "monster" {
		t.Errorf("expected category 'monster', got %q", creeper.Category)
	}
}

func TestCore_Enchantments(t *testing.T) {
	c := loadCore(t)

	prot, ok := c.Enchantments["protection"]
	if !ok {
		t.Fatal("expected to find enchantment 'protection'")
	}
	if prot.MaxLevel != 4 {
		t.Errorf("expected max level 4, got %d", prot.MaxLevel)
	}
	if prot.Category != "armor" {
		t.Errorf("expected category 'armor', got %q", prot.Category)
	}
}

func TestCore_PotionsReferenceEffects(t *testing.T) {
	c := loadCore(t)

	swift, ok := c.Potions["swiftness"]
	if !ok {
		t.Fatal("expected to find potion 'swiftness'")
	}
	if len(swift.Effects) == 0 {
		t.Fatal("expected swiftness to carry effects")
	}
	effectPath := swift.Effects[0].Effect.Path()
	if _, ok := c.StatusEffects[effectPath]; !ok {
		t.Errorf("potion references status effect %q that the catalog lacks", effectPath)
	}
}

// --- Seed Tests ---

func TestSeed(t *testing.T) {
	eng := engine.New()
	if err := vanilla.Seed(eng, loadCore(t)); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	stone, ok := eng.Blocks.Lookup(id.MustParse("minecraft:stone"))
	if !ok {
		t.Fatal("expected minecraft:stone in engine after Seed")
	}
	if stone.Hardness != 1.5 {
		t.Errorf("expected hardness 1.5, got %v", stone.Hardness)
	}
	if !eng.Items.Contains(id.MustParse("minecraft:stick")) {
		t.Error("expected minecraft:stick in engine after Seed")
	}
	if !eng.StatusEffects.Contains(id.MustParse("minecraft:speed")) {
		t.Error("expected minecraft:speed in engine after Seed")
	}
}

func TestSeed_TwiceFails(t *testing.T) {
	eng := engine.New()
	core := loadCore(t)

	if err := vanilla.Seed(eng, core); err != nil {
		t.Fatalf("first Seed() error = %v", err)
	}
	err := vanilla.Seed(eng, core)
	if !errors.Is(err, registry.ErrDuplicate) {
		t.Errorf("second Seed() error = %v, want ErrDuplicate", err)
	}
}

func TestSeed_LeavesModNamespaceFree(t *testing.T) {
	eng := engine.New()
	if err := vanilla.Seed(eng, loadCore(t)); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if eng.Blocks.Contains(id.MustParse("mosbergapi:stone")) {
		t.Error("Seed() registered content outside the minecraft namespace")
	}
}
