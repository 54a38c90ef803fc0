// Package guard provides a small helper for enforcing constructor usage on
// domain objects. Value objects and commands embed a ConstructorGuard so that
// zero-value instances, which bypass validation, can be detected at use time.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller does not
// supply a more specific error for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having passed through its constructor.
// The zero value is invalid, which is exactly the point: any object obtained
// without calling the constructor fails Validate.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
// Constructors store the result in a private field of the object they build.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate reports whether the owning object was properly constructed.
// Returns nil for constructed objects. For zero-value guards it returns the
// supplied error, or ErrDefaultConstructorGuard when err is nil.
func (g ConstructorGuard) Validate(err error) error {
	if g.constructed {
		return nil
	}

	if err != nil {
		return err
	}

	return ErrDefaultConstructorGuard
}
