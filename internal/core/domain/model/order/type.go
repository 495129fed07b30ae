package order

import (
	"fmt"

	"laundromat/internal/pkg/errs"
)

// Type discriminates the two order shapes handled by the business.
// A Pressing order carries exactly one pressing item (quantity + total);
// a Cleaning order carries one or more named cleaning line items.
// The type is fixed at creation and never changes across versions.
type Type int

const (
	// TypeUnknown represents an invalid or undefined order type.
	TypeUnknown Type = iota

	// Pressing is a flat ironing/pressing order priced by quantity tiers.
	Pressing

	// Cleaning is a dry-cleaning order with individually priced line items.
	Cleaning
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown: "Unknown",
		Pressing:    "Pressing",
		Cleaning:    "Cleaning",
	}
}

// Validate checks if the Type value is valid (Pressing or Cleaning).
func (t Type) Validate() error {
	if t != Pressing && t != Cleaning {
		return errs.NewValueIsInvalidErrorWithCause("order type is invalid", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the human-readable name of the order type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
