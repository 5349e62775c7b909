package registry

import (
	"fmt"
	"log/slog"

	"github.com/mosbergapi/modkit/pkg/id"
)

// Registrar is the registration facade for one content kind under one mod
// namespace. It validates the short name, qualifies it into a full
// identifier, hands the value to the engine store, and keeps a local name
// index so mod code can look its own content back up without knowing the
// namespace.
//
// A Registrar is not safe for concurrent use: registration happens during
// single-threaded startup.
type Registrar[T any] struct {
	kind      string
	namespace string
	store     Store[T]
	names     map[string]T
	order     []string
	log       *slog.Logger
}

// NewRegistrar returns a Registrar for the given content kind that registers
// into store under namespace. The namespace is not checked here; an invalid
// one makes every Register call fail with ErrInvalidArgument.
func NewRegistrar[T any](kind, namespace string, store Store[T], log *slog.Logger) *Registrar[T] {
	if log == nil {
		log = slog.Default()
	}
	return &Registrar[T]{
		kind:      kind,
		namespace: namespace,
		store:     store,
		names:     make(map[string]T),
		log:       log,
	}
}

// Kind returns the content kind label ("block", "item", ...).
func (r *Registrar[T]) Kind() string { return r.kind }

// Namespace returns the namespace every registered name is qualified under.
func (r *Registrar[T]) Namespace() string { return r.namespace }

// ID returns the full identifier name would be registered under. It does not
// check whether name is actually registered.
func (r *Registrar[T]) ID(name string) (id.ID, error) {
	return id.New(r.namespace, name)
}

// Register qualifies name under the registrar's namespace, registers value
// with the engine, and records it in the local index. On success the value is
// returned unchanged so registration can feed a variable directly:
//
//	ruby, err := kit.Items.Register("ruby", item)
//
// It fails with ErrInvalidArgument for an empty or malformed name or a nil
// value, and with ErrDuplicate if the name or the resulting identifier is
// already taken. A failed call changes nothing: the engine and the local
// index are only touched together.
func (r *Registrar[T]) Register(name string, value T) (T, error) {
	var zero T
	key, err := id.New(r.namespace, name)
	if err != nil {
		return zero, fmt.Errorf("register %s %q: %s: %w", r.kind, name, err, ErrInvalidArgument)
	}
	if isNil(value) {
		return zero, fmt.Errorf("register %s %q: nil value: %w", r.kind, name, ErrInvalidArgument)
	}
	if _, taken := r.names[name]; taken {
		return zero, fmt.Errorf("register %s %q: %w", r.kind, name, ErrDuplicate)
	}
	if _, err := r.store.Register(key, value); err != nil {
		return zero, fmt.Errorf("register %s %q: %w", r.kind, name, err)
	}
	r.names[name] = value
	r.order = append(r.order, name)
	r.log.Debug("registered", "kind", r.kind, "id", key)
	return value, nil
}

// MustRegister is Register but panics on error. It suits package-level
// content tables where a registration failure is a programming mistake that
// should stop the process immediately.
func (r *Registrar[T]) MustRegister(name string, value T) T {
	v, err := r.Register(name, value)
	if err != nil {
		panic(err)
	}
	return v
}

// Get returns the value registered under the short name, reporting whether
// it exists. A miss is an ordinary outcome, not an error.
func (r *Registrar[T]) Get(name string) (T, bool) {
	v, ok := r.names[name]
	return v, ok
}

// Has reports whether name is registered through this registrar.
func (r *Registrar[T]) Has(name string) bool {
	_, ok := r.names[name]
	return ok
}

// Len returns how many values this registrar has registered.
func (r *Registrar[T]) Len() int { return len(r.names) }

// Names returns the registered short names in registration order.
func (r *Registrar[T]) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Each calls fn for every registered entry in registration order until fn
// returns false.
func (r *Registrar[T]) Each(fn func(name string, value T) bool) {
	for _, name := range r.order {
		if !fn(name, r.names[name]) {
			return
		}
	}
}
