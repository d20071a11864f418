// Package guard implements the constructor guard pattern used by domain types
// to reject zero-value instances that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes properly constructed objects from zero
// values. Embed one in a struct and set it via NewConstructorGuard inside the
// constructor; the zero value fails Validate.
//
// Example:
//
//	type Weight struct {
//	    grams int64
//	    guard guard.ConstructorGuard
//	}
//
//	func NewWeight(grams int64) (Weight, error) {
//	    if grams <= 0 {
//	        return Weight{}, errors.New("grams must be positive")
//	    }
//	    return Weight{grams: grams, guard: guard.NewConstructorGuard()}, nil
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its holder as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
