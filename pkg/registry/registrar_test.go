package registry_test

import (
	"errors"
	"testing"

	"github.com/mosbergapi/modkit/pkg/id"
	"github.com/mosbergapi/modkit/pkg/registry"
)

func newWidgetRegistrar(t *testing.T) (*registry.Registrar[*widget], *registry.Map[*widget]) {
	t.Helper()
	store := registry.NewMap[*widget]("widget")
	return registry.NewRegistrar[*widget]("widget", "mosbergapi", store, nil), store
}

// --- Registrar Tests ---

func TestRegistrarQualifiesNames(t *testing.T) {
	r, store := newWidgetRegistrar(t)
	w := &widget{name: "custom_block"}

	got, err := r.Register("custom_block", w)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if got != w {
		t.Errorf("Register() = %p, want the registered value %p", got, w)
	}

	key := id.MustParse("mosbergapi:custom_block")
	if !store.Contains(key) {
		t.Errorf("engine store does not contain %v after Register", key)
	}
	stored, _ := store.Lookup(key)
	if stored != w {
		t.Errorf("engine store holds %p under %v, want %p", stored, key, w)
	}
}

func TestRegistrarGetHas(t *testing.T) {
	r, _ := newWidgetRegistrar(t)
	w := &widget{name: "gizmo"}
	if _, err := r.Register("gizmo", w); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	got, ok := r.Get("gizmo")
	if !ok {
		t.Fatalf("Get(gizmo) reported missing after Register")
	}
	if got != w {
		t.Errorf("Get(gizmo) = %p, want %p", got, w)
	}
	if !r.Has("gizmo") {
		t.Errorf("Has(gizmo) = false, want true")
	}

	if _, ok := r.Get("absent"); ok {
		t.Errorf("Get(absent) reported a hit")
	}
	if r.Has("absent") {
		t.Errorf("Has(absent) = true, want false")
	}
}

func TestRegistrarRejectsDuplicate(t *testing.T) {
	r, store := newWidgetRegistrar(t)
	first := &widget{name: "first"}
	if _, err := r.Register("gizmo", first); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, err := r.Register("gizmo", &widget{name: "second"})
	if !errors.Is(err, registry.ErrDuplicate) {
		t.Fatalf("second Register() error = %v, want ErrDuplicate", err)
	}

	got, _ := r.Get("gizmo")
	if got != first {
		t.Errorf("Get() after failed re-register = %p, want original %p", got, first)
	}
	if r.Len() != 1 || store.Len() != 1 {
		t.Errorf("Len() after failed re-register = %d local / %d engine, want 1 / 1", r.Len(), store.Len())
	}
}

func TestRegistrarRejectsEngineCollision(t *testing.T) {
	r, store := newWidgetRegistrar(t)
	key := id.MustParse("mosbergapi:gizmo")
	if _, err := store.Register(key, &widget{name: "engine"}); err != nil {
		t.Fatalf("seeding store: %v", err)
	}

	_, err := r.Register("gizmo", &widget{name: "mod"})
	if !errors.Is(err, registry.ErrDuplicate) {
		t.Fatalf("Register() over engine entry error = %v, want ErrDuplicate", err)
	}
	if r.Has("gizmo") {
		t.Errorf("local index recorded a registration the engine refused")
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

func TestRegistrarRejectsInvalid(t *testing.T) {
	r, store := newWidgetRegistrar(t)

	cases := []struct {
		label string
		name  string
		value *widget
	}{
		{"empty name", "", &widget{}},
		{"uppercase name", "Gizmo", &widget{}},
		{"space in name", "my gizmo", &widget{}},
		{"colon in name", "mosbergapi:gizmo", &widget{}},
		{"nil value", "gizmo", nil},
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			_, err := r.Register(tc.name, tc.value)
			if !errors.Is(err, registry.ErrInvalidArgument) {
				t.Errorf("Register(%q) error = %v, want ErrInvalidArgument", tc.name, err)
			}
		})
	}
	if r.Len() != 0 || store.Len() != 0 {
		t.Errorf("rejected registers mutated state: %d local / %d engine entries", r.Len(), store.Len())
	}
}

func TestRegistrarNamesOrder(t *testing.T) {
	r, _ := newWidgetRegistrar(t)
	names := []string{"ruby", "ruby_block", "ruby_sword"}
	for _, n := range names {
		if _, err := r.Register(n, &widget{name: n}); err != nil {
			t.Fatalf("Register(%s) error = %v", n, err)
		}
	}

	got := r.Names()
	if len(got) != len(names) {
		t.Fatalf("Names() returned %d names, want %d", len(got), len(names))
	}
	for i, n := range names {
		if got[i] != n {
			t.Errorf("Names()[%d] = %s, want %s", i, got[i], n)
		}
	}
}

func TestRegistrarID(t *testing.T) {
	r, _ := newWidgetRegistrar(t)

	key, err := r.ID("custom_block")
	if err != nil {
		t.Fatalf("ID() error = %v", err)
	}
	if key.String() != "mosbergapi:custom_block" {
		t.Errorf("ID(custom_block) = %s, want mosbergapi:custom_block", key)
	}

	if _, err := r.ID("Bad Name"); err == nil {
		t.Errorf("ID(Bad Name) succeeded, want error")
	}
}

func TestMustRegisterPanics(t *testing.T) {
	r, _ := newWidgetRegistrar(t)
	r.MustRegister("gizmo", &widget{})

	defer func() {
		if recover() == nil {
			t.Errorf("MustRegister() on duplicate did not panic")
		}
	}()
	r.MustRegister("gizmo", &widget{})
}
