package storage

import (
	"errors"
	"fmt"

	"laundromat/internal/core/domain/model/kernel"
	"laundromat/internal/pkg/errs"
)

var (
	// ErrCannotFitInRack indicates that a garment count cannot be stored in the
	// rack because the remaining capacity is insufficient.
	ErrCannotFitInRack = errors.New("cannot fit garments in this rack")

	// ErrReleaseExceedsUsedCapacity indicates an attempt to release more garment
	// units than the rack currently holds.
	ErrReleaseExceedsUsedCapacity = errors.New("release exceeds used capacity")

	// ErrRackIsNotConstructed indicates that the Rack was not properly
	// initialized through the NewRack constructor function.
	ErrRackIsNotConstructed = errors.New("Rack must be created via NewRack constructor")
)

// Rack represents a physical storage rack where pressed and cleaned garments
// wait for pickup. It is a domain entity that encapsulates the business rules
// for capacity accounting and pickup-number ranges.
//
// A Rack has a fixed total capacity measured in garment units and a reserved
// contiguous pickup-number range [fromRange, toRange]. Every accepted order
// consumes part of the capacity and one number from the range; delivering the
// order gives both back.
//
// Key business rules:
//   - Must be constructed through NewRack or RestoreRack
//   - 0 <= usedCapacity <= totalCapacity at all times
//   - fromRange >= 1 and toRange >= fromRange
//   - Capacity only changes through Occupy and Release
//
// Example usage:
//
//	rack, err := storage.NewRack(kernel.NewUUID(), 1, 150, 1, 150)
//	if err != nil {
//	    return err
//	}
//
//	if rack.CanFit(3) {
//	    err = rack.Occupy(3)
//	}
type Rack struct {
	// id uniquely identifies the rack
	id kernel.UUID

	// rackNumber is the human-facing rack label
	rackNumber int

	// totalCapacity is the maximum number of garment units the rack can hold
	totalCapacity int

	// usedCapacity is the number of garment units currently occupying the rack
	usedCapacity int

	// fromRange / toRange bound the contiguous pickup-number range reserved
	// for this rack
	fromRange int
	toRange   int

	// guard ensures the entity was properly initialized
	guard kernel.ConstructorGuard
}

// NewRack creates an empty Rack entity with the specified parameters.
//
// Parameters:
//   - id: unique identifier for the rack (must be a valid UUID)
//   - rackNumber: human-facing label (must be greater than 0)
//   - totalCapacity: maximum garment units (must be greater than 0)
//   - fromRange, toRange: inclusive pickup-number range (1 <= from <= to)
//
// Returns the rack or the joined validation errors.
func NewRack(id kernel.UUID, rackNumber, totalCapacity, fromRange, toRange int) (*Rack, error) {
	rack := &Rack{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		rack.setID(id),
		rack.setRackNumber(rackNumber),
		rack.setTotalCapacity(totalCapacity),
		rack.setRange(fromRange, toRange),
	); err != nil {
		return nil, err
	}

	return rack, nil
}

// RestoreRack reconstructs a Rack entity from persistent storage, including
// its current used capacity. The restored rack behaves identically to one
// mutated through normal domain operations.
func RestoreRack(id kernel.UUID, rackNumber, totalCapacity, usedCapacity, fromRange, toRange int) (*Rack, error) {
	rack := &Rack{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		rack.setID(id),
		rack.setRackNumber(rackNumber),
		rack.setTotalCapacity(totalCapacity),
		rack.setRange(fromRange, toRange),
	); err != nil {
		return nil, err
	}

	if err := rack.setUsedCapacity(usedCapacity); err != nil {
		return nil, err
	}

	return rack, nil
}

// IsEqual compares two Rack entities by identity.
func (r *Rack) IsEqual(other *Rack) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the unique identifier of the rack.
func (r *Rack) ID() kernel.UUID {
	return r.id
}

// RackNumber returns the human-facing rack label.
func (r *Rack) RackNumber() int {
	return r.rackNumber
}

// TotalCapacity returns the maximum garment units the rack can hold.
func (r *Rack) TotalCapacity() int {
	return r.totalCapacity
}

// UsedCapacity returns the garment units currently occupying the rack.
func (r *Rack) UsedCapacity() int {
	return r.usedCapacity
}

// FromRange returns the inclusive lower bound of the pickup-number range.
func (r *Rack) FromRange() int {
	return r.fromRange
}

// ToRange returns the inclusive upper bound of the pickup-number range.
func (r *Rack) ToRange() int {
	return r.toRange
}

// ContainsNumber reports whether a pickup number lies in the rack's range.
func (r *Rack) ContainsNumber(number int) bool {
	return number >= r.fromRange && number <= r.toRange
}

// CanFit reports whether garmentCount more units fit into the rack.
// A non-positive count never fits.
func (r *Rack) CanFit(garmentCount int) bool {
	if garmentCount <= 0 {
		return false
	}
	return r.usedCapacity+garmentCount <= r.totalCapacity
}

// Occupy consumes garmentCount units of rack capacity.
//
// Returns ErrCannotFitInRack if the remaining capacity is insufficient, or a
// validation error for a non-positive count. The caller persists the change
// inside the allocation transaction.
func (r *Rack) Occupy(garmentCount int) error {
	if garmentCount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"garmentCount is invalid",
			fmt.Errorf("%d is not greater than 0", garmentCount),
		)
	}
	if !r.CanFit(garmentCount) {
		return ErrCannotFitInRack
	}

	r.usedCapacity += garmentCount
	return nil
}

// Release gives garmentCount units of rack capacity back.
//
// Returns ErrReleaseExceedsUsedCapacity if the rack currently holds fewer
// units than requested, so used capacity can never go negative.
func (r *Rack) Release(garmentCount int) error {
	if garmentCount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"garmentCount is invalid",
			fmt.Errorf("%d is not greater than 0", garmentCount),
		)
	}
	if garmentCount > r.usedCapacity {
		return ErrReleaseExceedsUsedCapacity
	}

	r.usedCapacity -= garmentCount
	return nil
}

func (r *Rack) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.id = id
	return nil
}

func (r *Rack) setRackNumber(rackNumber int) error {
	if rackNumber <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"rackNumber is invalid",
			fmt.Errorf("%d is not greater than 0", rackNumber),
		)
	}

	r.rackNumber = rackNumber
	return nil
}

func (r *Rack) setTotalCapacity(totalCapacity int) error {
	if totalCapacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalCapacity is invalid",
			fmt.Errorf("%d is not greater than 0", totalCapacity),
		)
	}

	r.totalCapacity = totalCapacity
	return nil
}

func (r *Rack) setRange(fromRange, toRange int) error {
	if fromRange <= 0 || toRange < fromRange {
		return errs.NewValueIsOutOfRangeError("pickup number range", fromRange, 1, toRange)
	}

	r.fromRange = fromRange
	r.toRange = toRange
	return nil
}

// setUsedCapacity restores the occupancy counter during entity restoration.
func (r *Rack) setUsedCapacity(usedCapacity int) error {
	if usedCapacity < 0 || usedCapacity > r.totalCapacity {
		return errs.NewValueIsOutOfRangeError("usedCapacity", usedCapacity, 0, r.totalCapacity)
	}

	r.usedCapacity = usedCapacity
	return nil
}

// Validate checks if the Rack entity was properly constructed.
func (r *Rack) Validate() error {
	if r == nil {
		return ErrRackIsNotConstructed
	}
	return r.guard.Validate(ErrRackIsNotConstructed)
}
