// Package guard implements the constructor guard pattern used by domain
// value objects and entities to reject zero-value instances. Embedding a
// ConstructorGuard in a struct makes it possible to tell apart objects that
// went through their constructor from ones created as bare struct literals.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created through
// their designated constructor functions. The guard holds an internal flag that
// is only set when the object is built by its constructor; a zero-value struct
// fails validation.
//
// Example usage:
//
//	var ErrDoseNotConstructed = errors.New("Dose must be created via NewDose")
//
//	type Dose struct {
//	    amount int
//	    unit   string
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewDose(amount int, unit string) (Dose, error) {
//	    if amount <= 0 {
//	        return Dose{}, errors.New("amount must be positive")
//	    }
//	    return Dose{
//	        amount: amount,
//	        unit:   unit,
//	        guard:  guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (d Dose) Validate() error {
//	    return d.guard.Validate(ErrDoseNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
// Call it in the constructor of a domain object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed.
// It returns the provided validationError for zero-value objects, falling back to
// ErrDefaultConstructorGuard when validationError is nil, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
