// Package guard provides ConstructorGuard, which lets value objects, commands and
// queries detect that they were built through their constructor rather than as zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// guarded object is a zero value and the caller passed no specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in structs that must only be created via their constructors.
//
// Example usage:
//
//	var ErrRouteNotConstructed = errors.New("DeliveryRoute must be created via NewDeliveryRoute")
//
//	type DeliveryRoute struct {
//	    motoboyNome string
//	    guard       guard.ConstructorGuard
//	}
//
//	func (r *DeliveryRoute) Validate() error {
//	    return r.guard.Validate(ErrRouteNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
