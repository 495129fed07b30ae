package queries

import (
	"errors"

	"laundromat/internal/core/domain/model/kernel"
	"laundromat/internal/core/domain/model/order"
	"laundromat/internal/pkg/guard"
)

var ErrGetOrdersByCustomerQueryIsNotConstructed = errors.New(
	"GetOrdersByCustomerQuery must be created via NewGetOrdersByCustomerQuery constructor",
)

// OrderFilters narrows a customer's order listing. Nil fields are ignored.
// Delivered chains are hidden unless IncludeDelivered is set, matching the
// all-orders listing; an explicit Status filter overrides the hiding, so
// Status = Delivered lists exactly the delivered chains.
type OrderFilters struct {
	Status           *order.Status
	OrderType        *order.Type
	IncludeDelivered bool
}

// GetOrdersByCustomerQuery retrieves the main versions of one customer's
// order chains, optionally filtered by status and order type.
//
// Example:
//
//	status := order.Pending
//	query, err := NewGetOrdersByCustomerQuery(customerID, OrderFilters{Status: &status})
//	if err != nil {
//	    return err
//	}
//	views, err := NewGetOrdersByCustomerQueryHandler(db).Handle(ctx, query)
type GetOrdersByCustomerQuery struct {
	customerID kernel.UUID
	filters    OrderFilters

	guard guard.ConstructorGuard
}

// NewGetOrdersByCustomerQuery creates a query to list a customer's orders.
// Non-nil filter fields are validated up front.
func NewGetOrdersByCustomerQuery(customerID kernel.UUID, filters OrderFilters) (GetOrdersByCustomerQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetOrdersByCustomerQuery{}, err
	}

	if filters.Status != nil {
		if err := filters.Status.Validate(); err != nil {
			return GetOrdersByCustomerQuery{}, err
		}
	}
	if filters.OrderType != nil {
		if err := filters.OrderType.Validate(); err != nil {
			return GetOrdersByCustomerQuery{}, err
		}
	}

	return GetOrdersByCustomerQuery{
		customerID: customerID,
		filters:    filters,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByCustomerQueryIsNotConstructed if validation fails.
func (q GetOrdersByCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByCustomerQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are listed.
func (q GetOrdersByCustomerQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// Filters returns the optional listing filters.
func (q GetOrdersByCustomerQuery) Filters() OrderFilters {
	return q.filters
}
