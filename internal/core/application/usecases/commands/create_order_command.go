package commands

import (
	"errors"

	"laundromat/internal/core/domain/model/kernel"
	"laundromat/internal/core/domain/model/order"
	"laundromat/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrPressingQuantityIsInvalid = errors.New("pressing quantity must be greater than 0")
	ErrCleaningLinesAreRequired  = errors.New("at least one cleaning line is required")
	ErrCleaningLineIsInvalid     = errors.New("cleaning line must have a name, a positive quantity and a non-negative unit price")
	ErrItemsPayloadMismatch      = errors.New("items payload does not match the order type")
	ErrAmountPaidIsInvalid       = errors.New("amount paid must not be negative")
	ErrTicketNumberIsInvalid     = errors.New("ticket number must not be negative")
)

// CleaningLine is one garment line of a cleaning order request: the garment
// name, the unit price the clerk agreed with the customer, and the quantity.
type CleaningLine struct {
	Name      string
	UnitPrice int
	Quantity  int
}

// CreateOrderCommand represents a request to register a new laundry order.
// The items payload is shaped by the order type: a single garment quantity
// for pressing, a non-empty set of lines for cleaning. A positive ticket
// number selects the administrative path that bypasses rack allocation.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(
//	    orderID, order.Cleaning, customerID,
//	    order.Cash, order.Unpaid, 0,
//	    0, []commands.CleaningLine{{Name: "coat", UnitPrice: 15, Quantity: 1}},
//	    0, userID,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	orderType        order.Type
	customerID       kernel.UUID
	paymentMethod    order.PaymentMethod
	paymentStatus    order.PaymentStatus
	amountPaid       int
	pressingQuantity int
	cleaningLines    []CleaningLine
	ticketNumber     int
	createdBy        kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new laundry order.
// Validates ids, payment details, and the type-shaped items payload: a
// pressing order carries exactly a positive garment quantity, a cleaning
// order carries a non-empty set of valid lines. Returns an error if any
// validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderType order.Type,
	customerID kernel.UUID,
	paymentMethod order.PaymentMethod,
	paymentStatus order.PaymentStatus,
	amountPaid int,
	pressingQuantity int,
	cleaningLines []CleaningLine,
	ticketNumber int,
	createdBy kernel.UUID,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setOrderType(orderType),
		orderCommand.setCustomerID(customerID),
		orderCommand.setPaymentMethod(paymentMethod),
		orderCommand.setPaymentStatus(paymentStatus),
		orderCommand.setAmountPaid(amountPaid),
		orderCommand.setItems(orderType, pressingQuantity, cleaningLines),
		orderCommand.setTicketNumber(ticketNumber),
		orderCommand.setCreatedBy(createdBy),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order's original version row.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderType returns the requested order type.
func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

// CustomerID returns the owning customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PaymentMethod returns how the customer settles the order.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// PaymentStatus returns the initial settlement state.
func (c CreateOrderCommand) PaymentStatus() order.PaymentStatus {
	return c.paymentStatus
}

// AmountPaid returns the initial deposit.
func (c CreateOrderCommand) AmountPaid() int {
	return c.amountPaid
}

// PressingQuantity returns the garment quantity for a pressing order,
// 0 for cleaning orders.
func (c CreateOrderCommand) PressingQuantity() int {
	return c.pressingQuantity
}

// CleaningLines returns the garment lines of a cleaning order,
// nil for pressing orders.
func (c CreateOrderCommand) CleaningLines() []CleaningLine {
	return c.cleaningLines
}

// TicketNumber returns the administratively chosen pickup number,
// 0 when rack allocation should assign one.
func (c CreateOrderCommand) TicketNumber() int {
	return c.ticketNumber
}

// CreatedBy returns the user accepting the order.
func (c CreateOrderCommand) CreatedBy() kernel.UUID {
	return c.createdBy
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.paymentMethod = method
	return nil
}

func (c *CreateOrderCommand) setPaymentStatus(status order.PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.paymentStatus = status
	return nil
}

func (c *CreateOrderCommand) setAmountPaid(amountPaid int) error {
	if amountPaid < 0 {
		return ErrAmountPaidIsInvalid
	}

	c.amountPaid = amountPaid
	return nil
}

func (c *CreateOrderCommand) setItems(orderType order.Type, pressingQuantity int, cleaningLines []CleaningLine) error {
	switch orderType {
	case order.Pressing:
		if len(cleaningLines) != 0 {
			return ErrItemsPayloadMismatch
		}
		if pressingQuantity <= 0 {
			return ErrPressingQuantityIsInvalid
		}

		c.pressingQuantity = pressingQuantity
	case order.Cleaning:
		if pressingQuantity != 0 {
			return ErrItemsPayloadMismatch
		}
		if len(cleaningLines) == 0 {
			return ErrCleaningLinesAreRequired
		}
		for _, line := range cleaningLines {
			if line.Name == "" || line.Quantity <= 0 || line.UnitPrice < 0 {
				return ErrCleaningLineIsInvalid
			}
		}

		c.cleaningLines = cleaningLines
	default:
		// setOrderType already reports the invalid type
		return nil
	}

	return nil
}

func (c *CreateOrderCommand) setTicketNumber(ticketNumber int) error {
	if ticketNumber < 0 {
		return ErrTicketNumberIsInvalid
	}

	c.ticketNumber = ticketNumber
	return nil
}

func (c *CreateOrderCommand) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}

	c.createdBy = createdBy
	return nil
}
