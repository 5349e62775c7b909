package registry

import (
	"fmt"
	"reflect"

	"github.com/mosbergapi/modkit/pkg/id"
)

// Store is the engine-side register/lookup primitive a Registrar delegates
// to. Registration is irreversible for the lifetime of the process, so the
// interface deliberately has no removal operation.
type Store[T any] interface {
	// Register binds value to key. It returns the value unchanged on
	// success, ErrDuplicate if key is already bound, and ErrInvalidArgument
	// for a zero key or nil value. A failed call leaves the store untouched.
	Register(key id.ID, value T) (T, error)

	// Lookup returns the value bound to key, reporting whether key is bound.
	Lookup(key id.ID) (T, bool)

	// Contains reports whether key is bound.
	Contains(key id.ID) bool

	// Len returns the number of bound keys.
	Len() int

	// Each calls fn for every entry in registration order until fn returns
	// false.
	Each(fn func(key id.ID, value T) bool)
}

// Map is the in-memory Store used by the engine registries. It preserves
// registration order so catalog dumps and generated data stay deterministic.
//
// Map is not safe for concurrent use. All registration happens during
// single-threaded startup, before any lookups are served.
type Map[T any] struct {
	kind    string
	entries map[id.ID]T
	order   []id.ID
}

// NewMap returns an empty Map. The kind label only appears in error and log
// messages ("block", "sound_event", ...).
func NewMap[T any](kind string) *Map[T] {
	return &Map[T]{
		kind:    kind,
		entries: make(map[id.ID]T),
	}
}

func (m *Map[T]) Register(key id.ID, value T) (T, error) {
	var zero T
	if key.IsZero() {
		return zero, fmt.Errorf("%s registry: empty id: %w", m.kind, ErrInvalidArgument)
	}
	if isNil(value) {
		return zero, fmt.Errorf("%s registry: %s: nil value: %w", m.kind, key, ErrInvalidArgument)
	}
	if _, ok := m.entries[key]; ok {
		return zero, fmt.Errorf("%s registry: %s: %w", m.kind, key, ErrDuplicate)
	}
	m.entries[key] = value
	m.order = append(m.order, key)
	return value, nil
}

func (m *Map[T]) Lookup(key id.ID) (T, bool) {
	v, ok := m.entries[key]
	return v, ok
}

func (m *Map[T]) Contains(key id.ID) bool {
	_, ok := m.entries[key]
	return ok
}

func (m *Map[T]) Len() int { return len(m.entries) }

func (m *Map[T]) Each(fn func(key id.ID, value T) bool) {
	for _, key := range m.order {
		if !fn(key, m.entries[key]) {
			return
		}
	}
}

// Keys returns the bound identifiers in registration order.
func (m *Map[T]) Keys() []id.ID {
	keys := make([]id.ID, len(m.order))
	copy(keys, m.order)
	return keys
}

// isNil reports whether value is a typed nil hiding behind the type
// parameter. Plain structs are never nil; pointer, map, slice, func, channel
// and interface values can be.
func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
