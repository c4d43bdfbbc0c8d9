package inject

import (
	"fmt"
	"strconv"
	"strings"
)

// ── Keys ─────────────────────────────────────────────────────────────────────

// Key identifies a provider slot in a Container.
//
// A slot is addressed by the package-qualified name of the type its provider
// produces, plus an optional slot name. An empty Name is the default (unnamed)
// slot for the type. Two keys are equal iff both parts match, so Key is usable
// as a map key and comparable with ==.
type Key struct {
	// Type is the package-qualified identity of the provided type,
	// e.g. "*config.Config" or "inject_test.Mailer".
	Type string

	// Name is the optional slot name. Empty for the unnamed slot.
	Name string
}

// String renders the key for diagnostics: "pkg.Type" or `pkg.Type["name"]`.
func (k Key) String() string {
	if k.Name == "" {
		return k.Type
	}
	return k.Type + "[" + strconv.Quote(k.Name) + "]"
}

// typeIdentity derives the stable identity string for the type parameter T.
//
// It formats a *T with %T and strips the outer pointer, so an interface type
// parameter yields "pkg.Iface" and a pointer type parameter yields "*pkg.Foo".
// Registration and resolution both go through this function, so the two sides
// always agree on the identity, including for interface types, whose zero
// value would otherwise format as "<nil>".
func typeIdentity[T any]() string {
	return strings.TrimPrefix(fmt.Sprintf("%T", new(T)), "*")
}

// keyOf builds the Key for type parameter T and slot name.
func keyOf[T any](name string) Key {
	return Key{Type: typeIdentity[T](), Name: name}
}
