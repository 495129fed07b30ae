package order

import (
	"fmt"

	"laundromat/internal/pkg/errs"
)

// Status represents the lifecycle state of an order version.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> InProgress ──> Completed ──> Delivered
//	   │            │              │
//	   └────────────┴──────────────┴──> Cancelled | Damaged | Lost
//
// Forward jumps along the main line are allowed (the front desk frequently
// marks a pending order delivered in one step), but backward moves such as
// Completed to Pending are not. A side-exited order may still become
// Delivered; that transition is what frees its storage allocation.
// Delivered is the only terminal state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is accepted at the counter.
	Pending

	// InProgress indicates the garments are being washed or pressed.
	InProgress

	// Completed indicates the garments are ready on the rack for pickup.
	Completed

	// Delivered indicates the customer has collected the order.
	// This is the only terminal state; it is also the only state in which
	// the order's storage allocation is considered released.
	Delivered

	// Cancelled indicates the order was abandoned before delivery.
	Cancelled

	// Damaged indicates the garments were damaged during processing.
	Damaged

	// Lost indicates the garments could not be located.
	Lost
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		InProgress: "InProgress",
		Completed:  "Completed",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
		Damaged:    "Damaged",
		Lost:       "Lost",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		InProgress: "InProgress",
		Completed:  "Completed",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
		Damaged:    "Damaged",
		Lost:       "Lost",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, InProgress, Completed, Delivered,
// Cancelled, Damaged, Lost. Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsReleased reports whether an order in this status has given its rack
// capacity and pickup number back to the pool.
//
// Only Delivered counts as released. Cancelled, Damaged, and Lost orders
// deliberately keep their allocation until they are either delivered or
// explicitly deleted.
func (s Status) IsReleased() bool {
	return s == Delivered
}

// getMainLineRank returns the position of each main-line status in the
// workflow. Side-exit statuses have no rank.
func getMainLineRank() map[Status]int {
	//nolint:exhaustive // side-exit statuses are intentionally unranked
	return map[Status]int{
		Pending:    1,
		InProgress: 2,
		Completed:  3,
		Delivered:  4,
	}
}

// TransitionTo validates a transition from this status to target and
// returns the resulting status.
//
// Rules:
//   - target must be a valid status
//   - re-applying the current status is a no-op and always allowed
//   - Delivered is terminal: no transition out of it is allowed
//   - main-line transitions only move forward, so jumps like
//     Pending -> Delivered pass and Completed -> Pending fails
//   - any main-line status may side-exit to Cancelled, Damaged, or Lost
//   - a side-exited order may only transition to Delivered
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, error) if the transition is not allowed
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if s == target {
		return target, nil
	}

	if s == Delivered {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is terminal and cannot transition to %s", s.String(), target.String()),
		)
	}

	rank := getMainLineRank()
	fromRank, fromMain := rank[s]
	toRank, toMain := rank[target]

	if fromMain && toMain && toRank < fromRank {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s cannot move backward to %s", s.String(), target.String()),
		)
	}
	if !fromMain && target != Delivered {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s can only transition to %s", s.String(), Delivered.String()),
		)
	}

	return target, nil
}
