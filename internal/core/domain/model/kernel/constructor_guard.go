package kernel

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when no
// specific validation error is supplied, so a bypassed constructor always
// surfaces with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard makes zero-value domain objects detectable. Entities and
// value objects in this model carry private fields behind New…/Restore…
// constructors; embedding a guard lets their Validate methods reject
// instances that were created as bare struct literals and therefore skipped
// the constructor's invariant checks.
//
// Example usage:
//
//	var ErrPaymentNotConstructed = errors.New("Payment must be created via NewPayment")
//
//	type Payment struct {
//	    method PaymentMethod
//	    amount int
//	    guard  ConstructorGuard
//	}
//
//	func NewPayment(method PaymentMethod, amount int) (Payment, error) {
//	    if amount < 0 {
//	        return Payment{}, errors.New("amount cannot be negative")
//	    }
//	    return Payment{
//	        method: method,
//	        amount: amount,
//	        guard:  NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (p Payment) Validate() error {
//	    return p.guard.Validate(ErrPaymentNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed. Call it only
// inside the object's own constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object went through its constructor.
// Returns nil for constructed objects, validationError otherwise, and
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
