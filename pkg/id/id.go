// Package id provides the two-part qualified identifier used as a registry key.
package id

import (
	"fmt"
	"strings"
)

// DefaultNamespace is assumed when parsing an identifier with no namespace,
// matching the engine's own shorthand for stock content.
const DefaultNamespace = "minecraft"

// ID is a qualified name of the form namespace:path. IDs are immutable value
// types with structural equality; the zero value identifies nothing.
type ID struct {
	namespace string
	path      string
}

// New builds an ID from a namespace and a path, validating both parts.
func New(namespace, path string) (ID, error) {
	if err := ValidateNamespace(namespace); err != nil {
		return ID{}, err
	}
	if err := ValidatePath(path); err != nil {
		return ID{}, err
	}
	return ID{namespace: namespace, path: path}, nil
}

// MustNew is New, panicking on invalid input. Intended for identifier
// constants in initialization code.
func MustNew(namespace, path string) ID {
	v, err := New(namespace, path)
	if err != nil {
		panic(err)
	}
	return v
}

// Parse splits "namespace:path" into an ID. A string with no colon is treated
// as a path in DefaultNamespace.
func Parse(s string) (ID, error) {
	namespace, path, found := strings.Cut(s, ":")
	if !found {
		return New(DefaultNamespace, s)
	}
	return New(namespace, path)
}

// MustParse is Parse, panicking on invalid input.
func MustParse(s string) ID {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Namespace returns the namespace part.
func (i ID) Namespace() string { return i.namespace }

// Path returns the path part.
func (i ID) Path() string { return i.path }

// IsZero reports whether the ID is the empty identifier.
func (i ID) IsZero() bool { return i.namespace == "" && i.path == "" }

// String renders the ID as "namespace:path", or "" for the zero ID.
func (i ID) String() string {
	if i.IsZero() {
		return ""
	}
	return i.namespace + ":" + i.path
}

// MarshalText renders the ID in its string form, so IDs serialize as plain
// strings in JSON documents and as JSON object keys.
func (i ID) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText parses an ID from its string form.
func (i *ID) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// ValidateNamespace checks that a namespace contains only lowercase letters,
// digits, underscore, hyphen, and dot, and is non-empty.
func ValidateNamespace(namespace string) error {
	if namespace == "" {
		return fmt.Errorf("empty namespace")
	}
	for _, r := range namespace {
		if !validNamespaceRune(r) {
			return fmt.Errorf("namespace %q contains invalid character %q", namespace, r)
		}
	}
	return nil
}

// ValidatePath checks that a path contains only lowercase letters, digits,
// underscore, hyphen, dot, and slash, and is non-empty.
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}
	for _, r := range path {
		if !validNamespaceRune(r) && r != '/' {
			return fmt.Errorf("path %q contains invalid character %q", path, r)
		}
	}
	return nil
}

func validNamespaceRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_' || r == '-' || r == '.':
		return true
	}
	return false
}
