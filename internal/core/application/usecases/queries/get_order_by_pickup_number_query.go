package queries

import (
	"errors"

	"laundromat/internal/pkg/guard"
)

var (
	ErrGetOrderByPickupNumberQueryIsNotConstructed = errors.New(
		"GetOrderByPickupNumberQuery must be created via NewGetOrderByPickupNumberQuery constructor",
	)
	ErrPickupNumberIsInvalid = errors.New("pickup number must be greater than 0")
)

// GetOrderByPickupNumberQuery retrieves the order chain holding a pickup
// number. This is the counter lookup: a customer hands over their ticket and
// the clerk finds the garments. Pickup numbers are recycled after delivery,
// so by default delivered chains are excluded and the newest claim wins.
type GetOrderByPickupNumberQuery struct {
	pickupNumber     int
	includeDelivered bool

	guard guard.ConstructorGuard
}

// NewGetOrderByPickupNumberQuery creates a query to resolve a pickup number.
func NewGetOrderByPickupNumberQuery(pickupNumber int, includeDelivered bool) (GetOrderByPickupNumberQuery, error) {
	if pickupNumber <= 0 {
		return GetOrderByPickupNumberQuery{}, ErrPickupNumberIsInvalid
	}

	return GetOrderByPickupNumberQuery{
		pickupNumber:     pickupNumber,
		includeDelivered: includeDelivered,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderByPickupNumberQueryIsNotConstructed if validation fails.
func (q GetOrderByPickupNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByPickupNumberQueryIsNotConstructed)
}

// PickupNumber returns the claim number to resolve.
func (q GetOrderByPickupNumberQuery) PickupNumber() int {
	return q.pickupNumber
}

// IncludeDelivered reports whether delivered chains may match.
func (q GetOrderByPickupNumberQuery) IncludeDelivered() bool {
	return q.includeDelivered
}
