// Package guard provides a defensive construction check for domain objects.
// Embedding a ConstructorGuard in an entity or value object makes zero-value
// instances detectable, so code paths that bypass the designated constructor
// fail validation instead of operating on an unvalidated object.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having passed through its constructor.
// The zero value reports the object as not constructed.
//
// Example:
//
//	type Spool struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSpool(id kernel.UUID) (*Spool, error) {
//	    return &Spool{id: id, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (s *Spool) Validate() error {
//	    return s.guard.Validate(ErrSpoolIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as
// properly constructed. Call it only from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
