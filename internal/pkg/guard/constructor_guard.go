// Package guard enforces constructor usage for commands, queries, and
// aggregates. A zero-value object skipped its constructor and therefore its
// validation; Validate exposes that as an error instead of letting the
// object flow into a handler half-initialized.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller did not
// supply its own not-constructed error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embed it as a
// field and initialize it with NewConstructorGuard inside the constructor;
// the zero value reports the object as not constructed.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil when the owning object went through its constructor.
// Otherwise it returns notConstructed, or ErrDefaultConstructorGuard when
// notConstructed is nil.
func (g ConstructorGuard) Validate(notConstructed error) error {
	if g.constructed {
		return nil
	}
	if notConstructed != nil {
		return notConstructed
	}
	return ErrDefaultConstructorGuard
}
