// Package guard provides a small helper that marks value objects and
// commands as having been created through their constructor. The zero
// value of a guarded type fails validation, which prevents bypassing
// constructor invariants by direct struct instantiation.
package guard

import "errors"

// ErrNotConstructed is returned by Validate when no specific error is supplied.
var ErrNotConstructed = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing object went through a constructor.
// Embed it as a field and initialize it with NewConstructorGuard inside the
// constructor; the zero value reports the object as not constructed.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil when the guard was created via NewConstructorGuard.
// For a zero-value guard it returns notConstructedErr, falling back to
// ErrNotConstructed when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrNotConstructed
	}
	return notConstructedErr
}
