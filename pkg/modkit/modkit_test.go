package modkit_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/mosbergapi/modkit/pkg/content"
	"github.com/mosbergapi/modkit/pkg/engine"
	"github.com/mosbergapi/modkit/pkg/id"
	"github.com/mosbergapi/modkit/pkg/modkit"
	"github.com/mosbergapi/modkit/pkg/registry"
)

func newKit(t *testing.T, opts ...modkit.Option) (*modkit.Kit, *engine.Registries) {
	t.Helper()
	eng := engine.New()
	kit, err := modkit.New(eng, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return kit, eng
}

// --- Kit Tests ---

func TestRegisterBlockUnderDefaultNamespace(t *testing.T) {
	kit, eng := newKit(t)
	block := &content.Block{DisplayName: "Custom Block", Hardness: 1.5}

	got, err := kit.Blocks.Register("custom_block", block)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if got != block {
		t.Errorf("Register() = %p, want the registered value %p", got, block)
	}

	// The engine holds it under the fully qualified identifier.
	key := id.MustParse("mosbergapi:custom_block")
	stored, ok := eng.Blocks.Lookup(key)
	if !ok {
		t.Fatalf("engine lookup of %v failed after Register", key)
	}
	if stored != block {
		t.Errorf("engine holds %p, want %p", stored, block)
	}

	// Re-registering the same name fails and changes nothing.
	_, err = kit.Blocks.Register("custom_block", &content.Block{DisplayName: "Impostor"})
	if !errors.Is(err, registry.ErrDuplicate) {
		t.Fatalf("re-register error = %v, want ErrDuplicate", err)
	}
	back, ok := kit.Blocks.Get("custom_block")
	if !ok || back != block {
		t.Errorf("Get() after failed re-register = %p, want original %p", back, block)
	}
}

func TestWithNamespace(t *testing.T) {
	kit, eng := newKit(t, modkit.WithNamespace("gemcraft"))

	if kit.Namespace() != "gemcraft" {
		t.Errorf("Namespace() = %q, want gemcraft", kit.Namespace())
	}
	if _, err := kit.Items.Register("ruby", &content.Item{StackSize: 64}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if !eng.Items.Contains(id.MustParse("gemcraft:ruby")) {
		t.Errorf("item not registered under gemcraft namespace")
	}
}

func TestNewRejectsBadInputs(t *testing.T) {
	if _, err := modkit.New(nil); !errors.Is(err, registry.ErrInvalidArgument) {
		t.Errorf("New(nil engine) error = %v, want ErrInvalidArgument", err)
	}
	if _, err := modkit.New(engine.New(), modkit.WithNamespace("Bad Namespace")); !errors.Is(err, registry.ErrInvalidArgument) {
		t.Errorf("New(bad namespace) error = %v, want ErrInvalidArgument", err)
	}
}

func TestSameNameAcrossKinds(t *testing.T) {
	kit, _ := newKit(t)

	if _, err := kit.Blocks.Register("ruby", &content.Block{}); err != nil {
		t.Fatalf("block Register() error = %v", err)
	}
	if _, err := kit.Items.Register("ruby", &content.Item{}); err != nil {
		t.Errorf("item Register() with same short name error = %v, want success", err)
	}
}

// --- Install Tests ---

type gemMod struct{}

func (gemMod) Register(k *modkit.Kit) error {
	if _, err := k.Blocks.Register("ruby_block", &content.Block{DisplayName: "Ruby Block"}); err != nil {
		return err
	}
	_, err := k.Items.Register("ruby", &content.Item{DisplayName: "Ruby", StackSize: 64})
	return err
}

func TestInstall(t *testing.T) {
	kit, eng := newKit(t)

	if err := kit.Install(gemMod{}); err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if !eng.Blocks.Contains(id.MustParse("mosbergapi:ruby_block")) {
		t.Errorf("installed mod's block missing from engine")
	}
	if !kit.Items.Has("ruby") {
		t.Errorf("installed mod's item missing from kit index")
	}
}

func TestInstallPropagatesErrors(t *testing.T) {
	kit, _ := newKit(t)

	failing := modkit.ModFunc(func(k *modkit.Kit) error {
		_, err := k.Blocks.Register("", &content.Block{})
		return err
	})
	err := kit.Install(failing)
	if !errors.Is(err, registry.ErrInvalidArgument) {
		t.Errorf("Install() error = %v, want ErrInvalidArgument", err)
	}

	if err := kit.Install(nil); !errors.Is(err, registry.ErrInvalidArgument) {
		t.Errorf("Install(nil) error = %v, want ErrInvalidArgument", err)
	}
}

// --- Initialize Tests ---

func TestInitializeCountsAndIdempotence(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	kit, _ := newKit(t, modkit.WithLogger(log))

	kit.Blocks.MustRegister("ruby_block", &content.Block{})
	kit.Items.MustRegister("ruby", &content.Item{})
	kit.Items.MustRegister("ruby_sword", &content.Item{})

	total := kit.Initialize()
	if total != 3 {
		t.Fatalf("Initialize() = %d, want 3", total)
	}
	if out := buf.String(); !strings.Contains(out, "kind=item count=2") {
		t.Errorf("summary log missing item count, got:\n%s", out)
	}

	// A second call re-logs the same counts and registers nothing.
	if again := kit.Initialize(); again != total {
		t.Errorf("second Initialize() = %d, want %d", again, total)
	}
	if kit.Blocks.Len() != 1 || kit.Items.Len() != 2 {
		t.Errorf("Initialize() changed registration state")
	}
}
