package storage

import (
	"errors"
	"fmt"

	"laundromat/internal/core/domain/model/kernel"
	"laundromat/internal/pkg/errs"
)

// ErrAllocationIsNotConstructed indicates that the Allocation was not properly
// initialized through the NewAllocation constructor function.
var ErrAllocationIsNotConstructed = errors.New("Allocation must be created via NewAllocation constructor")

// Allocation represents a currently-occupied pickup number on a rack.
//
// One allocation exists per active order; it is created together with the
// order inside the allocation transaction and deleted when the order is
// delivered (or explicitly removed). The pair (rack, pickup number) is unique
// among active allocations, and the number always lies inside its rack's
// reserved range.
type Allocation struct {
	// pickupNumber is the customer-facing claim number
	pickupNumber int

	// orderID references the owning order chain (the original version id)
	orderID kernel.UUID

	// rackID references the rack the number was drawn from
	rackID kernel.UUID

	// guard ensures the entity was properly initialized
	guard kernel.ConstructorGuard
}

// NewAllocation creates an Allocation binding a pickup number on a rack to an
// order chain. The number must be positive; range membership is enforced by
// the allocator that selected it.
func NewAllocation(pickupNumber int, orderID, rackID kernel.UUID) (*Allocation, error) {
	a := &Allocation{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setPickupNumber(pickupNumber),
		a.setOrderID(orderID),
		a.setRackID(rackID),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// PickupNumber returns the occupied customer-facing number.
func (a *Allocation) PickupNumber() int {
	return a.pickupNumber
}

// OrderID returns the owning order chain's original id.
func (a *Allocation) OrderID() kernel.UUID {
	return a.orderID
}

// RackID returns the rack the number was drawn from.
func (a *Allocation) RackID() kernel.UUID {
	return a.rackID
}

func (a *Allocation) setPickupNumber(pickupNumber int) error {
	if pickupNumber <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"pickupNumber is invalid",
			fmt.Errorf("%d is not greater than 0", pickupNumber),
		)
	}

	a.pickupNumber = pickupNumber
	return nil
}

func (a *Allocation) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	a.orderID = orderID
	return nil
}

func (a *Allocation) setRackID(rackID kernel.UUID) error {
	if err := rackID.Validate(); err != nil {
		return err
	}

	a.rackID = rackID
	return nil
}

// Validate checks if the Allocation was properly constructed.
func (a *Allocation) Validate() error {
	if a == nil {
		return ErrAllocationIsNotConstructed
	}
	return a.guard.Validate(ErrAllocationIsNotConstructed)
}
