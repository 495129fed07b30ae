package commands

import (
	"errors"

	"laundromat/internal/core/domain/model/kernel"
	"laundromat/internal/core/domain/model/order"
	"laundromat/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial patch against an order chain.
// Nil fields are left unchanged; the patch is applied to a freshly appended
// version row, never to existing rows. The order type may be restated but
// never changed.
//
// Example:
//
//	status := order.Delivered
//	cmd, err := NewUpdateOrderCommand(orderID, kernel.NewUUID(), userID,
//	    commands.OrderPatch{Status: &status})
//	if err != nil {
//	    return err
//	}
//
//	handler := NewUpdateOrderCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to update order: %w", err)
//	}
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	newVersionID kernel.UUID
	updatedBy    kernel.UUID
	patch        OrderPatch

	guard guard.ConstructorGuard
}

// OrderPatch carries the optional fields of an order update.
// A nil field means "keep the current value". The pickup number has no
// patch field: it is fixed when the order is created, allocated or
// ticket-stamped, and every appended version copies it unchanged.
type OrderPatch struct {
	OrderType     *order.Type
	CustomerID    *kernel.UUID
	Status        *order.Status
	PaymentMethod *order.PaymentMethod
	PaymentStatus *order.PaymentStatus
	AmountPaid    *int
}

// NewUpdateOrderCommand creates a command to patch an order chain.
// orderID may reference any version of the chain; newVersionID is the
// identifier for the version row the update will append. Every non-nil
// patch field is validated up front.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	newVersionID kernel.UUID,
	updatedBy kernel.UUID,
	patch OrderPatch,
) (UpdateOrderCommand, error) {
	orderCommand := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setNewVersionID(newVersionID),
		orderCommand.setUpdatedBy(updatedBy),
		orderCommand.setPatch(patch),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier used to resolve the chain.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewVersionID returns the identifier for the appended version row.
func (c UpdateOrderCommand) NewVersionID() kernel.UUID {
	return c.newVersionID
}

// UpdatedBy returns the user performing the edit.
func (c UpdateOrderCommand) UpdatedBy() kernel.UUID {
	return c.updatedBy
}

// Patch returns the optional fields of the update.
func (c UpdateOrderCommand) Patch() OrderPatch {
	return c.patch
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setNewVersionID(newVersionID kernel.UUID) error {
	if err := newVersionID.Validate(); err != nil {
		return err
	}

	c.newVersionID = newVersionID
	return nil
}

func (c *UpdateOrderCommand) setUpdatedBy(updatedBy kernel.UUID) error {
	if err := updatedBy.Validate(); err != nil {
		return err
	}

	c.updatedBy = updatedBy
	return nil
}

func (c *UpdateOrderCommand) setPatch(patch OrderPatch) error {
	var errsJoined []error

	if patch.OrderType != nil {
		errsJoined = append(errsJoined, patch.OrderType.Validate())
	}
	if patch.CustomerID != nil {
		errsJoined = append(errsJoined, patch.CustomerID.Validate())
	}
	if patch.Status != nil {
		errsJoined = append(errsJoined, patch.Status.Validate())
	}
	if patch.PaymentMethod != nil {
		errsJoined = append(errsJoined, patch.PaymentMethod.Validate())
	}
	if patch.PaymentStatus != nil {
		errsJoined = append(errsJoined, patch.PaymentStatus.Validate())
	}
	if patch.AmountPaid != nil && *patch.AmountPaid < 0 {
		errsJoined = append(errsJoined, ErrAmountPaidIsInvalid)
	}

	if err := errors.Join(errsJoined...); err != nil {
		return err
	}

	c.patch = patch
	return nil
}
