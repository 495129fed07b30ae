package item

import (
	"errors"
	"fmt"

	"laundromat/internal/core/domain/model/kernel"
	"laundromat/internal/pkg/errs"
)

var (
	// ErrPressingItemIsNotConstructed indicates that a PressingItem was not
	// created via NewPressingItem.
	ErrPressingItemIsNotConstructed = errors.New("PressingItem must be created via NewPressingItem constructor")

	// ErrCleaningItemIsNotConstructed indicates that a CleaningItem was not
	// created via NewCleaningItem.
	ErrCleaningItemIsNotConstructed = errors.New("CleaningItem must be created via NewCleaningItem constructor")
)

// PressingItem is the single garment line of a pressing order: a quantity of
// garments pressed at tiered pricing. Rows are immutable once created;
// lifecycle edits never touch item contents.
//
// PressingItem and CleaningItem deliberately share no base type; an order's
// item shape is resolved by its order type, never by inheritance.
type PressingItem struct {
	id       kernel.UUID
	quantity int
	total    int

	guard kernel.ConstructorGuard
}

// NewPressingItem creates a pressing item row.
// Quantity must be positive; total must not be negative.
func NewPressingItem(id kernel.UUID, quantity, total int) (*PressingItem, error) {
	it := &PressingItem{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		it.setID(id),
		it.setQuantity(quantity),
		it.setTotal(total),
	); err != nil {
		return nil, err
	}

	return it, nil
}

// ID returns the item row's unique identifier.
func (i *PressingItem) ID() kernel.UUID {
	return i.id
}

// Quantity returns the number of garments pressed.
func (i *PressingItem) Quantity() int {
	return i.quantity
}

// Total returns the monetary total for this line.
func (i *PressingItem) Total() int {
	return i.total
}

// Validate checks if the PressingItem was properly constructed.
func (i *PressingItem) Validate() error {
	if i == nil {
		return ErrPressingItemIsNotConstructed
	}
	return i.guard.Validate(ErrPressingItemIsNotConstructed)
}

func (i *PressingItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *PressingItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *PressingItem) setTotal(total int) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total is invalid", fmt.Errorf("%d is negative", total))
	}
	i.total = total
	return nil
}

// CleaningItem is one named line of a dry-cleaning order: a garment name, a
// quantity, and the line total the clerk agreed with the customer (unit price
// chosen inside the catalog option's min/max band at order entry). Rows are
// immutable once created.
type CleaningItem struct {
	id       kernel.UUID
	name     string
	quantity int
	total    int

	guard kernel.ConstructorGuard
}

// NewCleaningItem creates a cleaning item row.
// Name must not be empty; quantity must be positive; total must not be negative.
func NewCleaningItem(id kernel.UUID, name string, quantity, total int) (*CleaningItem, error) {
	it := &CleaningItem{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		it.setID(id),
		it.setName(name),
		it.setQuantity(quantity),
		it.setTotal(total),
	); err != nil {
		return nil, err
	}

	return it, nil
}

// ID returns the item row's unique identifier.
func (i *CleaningItem) ID() kernel.UUID {
	return i.id
}

// Name returns the garment name of this line.
func (i *CleaningItem) Name() string {
	return i.name
}

// Quantity returns the number of garments on this line.
func (i *CleaningItem) Quantity() int {
	return i.quantity
}

// Total returns the monetary total for this line.
func (i *CleaningItem) Total() int {
	return i.total
}

// Validate checks if the CleaningItem was properly constructed.
func (i *CleaningItem) Validate() error {
	if i == nil {
		return ErrCleaningItemIsNotConstructed
	}
	return i.guard.Validate(ErrCleaningItemIsNotConstructed)
}

func (i *CleaningItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *CleaningItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name is required")
	}
	i.name = name
	return nil
}

func (i *CleaningItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *CleaningItem) setTotal(total int) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total is invalid", fmt.Errorf("%d is negative", total))
	}
	i.total = total
	return nil
}
