package queries

import (
	"errors"

	"laundromat/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order chain's main version, newest
// first. Delivered orders are hidden unless explicitly included, so the
// default listing shows only garments still on the racks.
type GetAllOrdersQuery struct {
	includeDelivered bool

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to list order chains.
func NewGetAllOrdersQuery(includeDelivered bool) GetAllOrdersQuery {
	return GetAllOrdersQuery{
		includeDelivered: includeDelivered,
		guard:            guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// IncludeDelivered reports whether delivered chains appear in the listing.
func (q GetAllOrdersQuery) IncludeDelivered() bool {
	return q.includeDelivered
}
