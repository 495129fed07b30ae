package order

import (
	"errors"
	"fmt"
	"time"

	"laundromat/internal/core/domain/model/kernel"
	"laundromat/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrStorageAlreadyAssigned indicates an attempt to assign a rack and pickup
	// number to an order version that already carries one.
	ErrStorageAlreadyAssigned = errors.New("order already has a storage assignment")

	// ErrTypeChangeNotAllowed indicates an attempt to change an order's type
	// across versions. A pressing order can never become a cleaning order.
	ErrTypeChangeNotAllowed = errors.New("order type cannot change across versions")
)

// Order represents one version row of a logical laundry order.
//
// A logical order is an append-only version chain: the original row plus one
// row per edit. Exactly one row in a chain carries isMainOrder=true, the
// current version. All versions share the same order type, pickup number,
// rack assignment, and monetary total; only status, payment fields, and the
// customer reference may differ between versions.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, customer, and creator
//   - Monetary total and amount paid are never negative
//   - Status transitions follow the Status state machine
//   - mainOrderID is nil only on the original version of a chain
//   - Can only be created through the NewOrder / NewVersion constructors
type Order struct {
	// id is the unique identifier of this version row
	id kernel.UUID

	// orderType is fixed at creation: Pressing or Cleaning
	orderType Type

	// customerID references the owning customer
	customerID kernel.UUID

	// paymentMethod and paymentStatus track settlement
	paymentMethod PaymentMethod
	paymentStatus PaymentStatus

	// status is the lifecycle state of this version
	status Status

	// total is the monetary total, fixed at creation
	total int

	// amountPaid is the amount received so far
	amountPaid int

	// pickupNumber is the customer-facing claim number (0 until assigned)
	pickupNumber int

	// storageID references the rack holding the garments (nil for
	// administrative orders created with an explicit ticket number)
	storageID *kernel.UUID

	// mainOrderID points to the original version of the chain (nil on the original)
	mainOrderID *kernel.UUID

	// isMainOrder marks the current version of the chain
	isMainOrder bool

	// createdBy references the user who produced this version
	createdBy kernel.UUID

	// createdAt is when this version row was written
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates the original version of a new order chain.
//
// The order starts in Pending status with no storage assignment; the caller
// is expected to either allocate a rack (AssignStorage) or stamp an explicit
// ticket number (AssignTicketNumber) before the order becomes claimable.
//
// Parameters:
//   - id: unique identifier for the version row (must be a valid UUID)
//   - orderType: Pressing or Cleaning, immutable afterwards
//   - customerID: owning customer (must be a valid UUID)
//   - paymentMethod, paymentStatus: settlement details
//   - total: monetary total computed by the pricing engine (>= 0)
//   - amountPaid: initial deposit (>= 0)
//   - createdBy: the user accepting the order
//
// Returns the constructed order or the joined validation errors.
func NewOrder(
	id kernel.UUID,
	orderType Type,
	customerID kernel.UUID,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	total int,
	amountPaid int,
	createdBy kernel.UUID,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isMainOrder:   true,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderType(orderType),
		o.setCustomerID(customerID),
		o.setPaymentMethod(paymentMethod),
		o.setPaymentStatus(paymentStatus),
		o.setTotal(total),
		o.setAmountPaid(amountPaid),
		o.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order version from persistent storage.
// Unlike NewOrder it restores every persisted attribute, including the
// version-chain bookkeeping and storage assignment.
func RestoreOrder(
	id kernel.UUID,
	orderType Type,
	customerID kernel.UUID,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	status Status,
	total int,
	amountPaid int,
	pickupNumber int,
	storageID *kernel.UUID,
	mainOrderID *kernel.UUID,
	isMainOrder bool,
	createdBy kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		isMainOrder:   isMainOrder,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderType(orderType),
		o.setCustomerID(customerID),
		o.setPaymentMethod(paymentMethod),
		o.setPaymentStatus(paymentStatus),
		o.setStatus(status),
		o.setTotal(total),
		o.setAmountPaid(amountPaid),
		o.setPickupNumber(pickupNumber),
		o.setStorageID(storageID),
		o.setMainOrderID(mainOrderID),
		o.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder, NewVersion, or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two order versions by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the unique identifier of this version row.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderType returns the order's type (Pressing or Cleaning).
func (o *Order) OrderType() Type {
	return o.orderType
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// PaymentMethod returns how the customer settles the order.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns the current settlement state.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Status returns the lifecycle state of this version.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the monetary total fixed at creation.
func (o *Order) Total() int {
	return o.total
}

// AmountPaid returns the amount received so far.
func (o *Order) AmountPaid() int {
	return o.amountPaid
}

// PickupNumber returns the customer-facing claim number, 0 if unassigned.
func (o *Order) PickupNumber() int {
	return o.pickupNumber
}

// StorageID returns the rack holding the garments, nil if none.
func (o *Order) StorageID() *kernel.UUID {
	return o.storageID
}

// MainOrderID returns the original version of the chain, nil on the original.
func (o *Order) MainOrderID() *kernel.UUID {
	return o.mainOrderID
}

// IsMainOrder reports whether this row is the current version of its chain.
func (o *Order) IsMainOrder() bool {
	return o.isMainOrder
}

// CreatedBy returns the user who produced this version.
func (o *Order) CreatedBy() kernel.UUID {
	return o.createdBy
}

// CreatedAt returns when this version row was written.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// OriginalID returns the identifier of the chain's original version.
// For the original version that is its own id; for later versions it is
// the mainOrderID. Storage allocations are always keyed by this id, so it
// stays stable across edits.
func (o *Order) OriginalID() kernel.UUID {
	if o.mainOrderID != nil {
		return *o.mainOrderID
	}
	return o.id
}

// IsReleased reports whether this version's storage allocation is freed.
func (o *Order) IsReleased() bool {
	return o.status.IsReleased()
}

// AssignStorage records the rack and pickup number produced by the storage
// allocator. It may only be called once per version; orders created with an
// explicit ticket number never receive a storage assignment.
func (o *Order) AssignStorage(storageID kernel.UUID, pickupNumber int) error {
	if err := storageID.Validate(); err != nil {
		return err
	}
	if o.storageID != nil || o.pickupNumber != 0 {
		return ErrStorageAlreadyAssigned
	}
	if pickupNumber <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"pickupNumber is invalid",
			fmt.Errorf("%d is not greater than 0", pickupNumber),
		)
	}

	o.storageID = &storageID
	o.pickupNumber = pickupNumber
	return nil
}

// AssignTicketNumber stamps an administratively chosen pickup number on an
// order that bypasses rack allocation. The order keeps a nil storage id.
func (o *Order) AssignTicketNumber(number int) error {
	if o.storageID != nil || o.pickupNumber != 0 {
		return ErrStorageAlreadyAssigned
	}
	if number <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"ticketNumber is invalid",
			fmt.Errorf("%d is not greater than 0", number),
		)
	}

	o.pickupNumber = number
	return nil
}

// ChangeStatus moves this version to the target lifecycle status, enforcing
// the Status state machine.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ChangeCustomer reassigns the order to a different customer.
func (o *Order) ChangeCustomer(customerID kernel.UUID) error {
	return o.setCustomerID(customerID)
}

// ChangePaymentMethod updates how the order is settled.
func (o *Order) ChangePaymentMethod(method PaymentMethod) error {
	return o.setPaymentMethod(method)
}

// ChangePaymentStatus updates the settlement state.
func (o *Order) ChangePaymentStatus(status PaymentStatus) error {
	return o.setPaymentStatus(status)
}

// RecordPayment updates the amount received so far.
func (o *Order) RecordPayment(amountPaid int) error {
	return o.setAmountPaid(amountPaid)
}

// MarkSuperseded flips this version off the chain's main slot. Called on the
// previous main version right before the replacement version is inserted;
// the pair must be persisted inside one transaction.
func (o *Order) MarkSuperseded() {
	o.isMainOrder = false
}

// NewVersion produces the next version row of this order's chain.
//
// The new version copies the immutable fields (type, pickup number, rack
// assignment, total) and the current mutable fields from this version, points
// mainOrderID at the chain's original, and becomes the main version. The
// caller applies the edit's changes to the returned version and persists it
// together with MarkSuperseded on this one.
//
// Parameters:
//   - id: identifier for the new version row
//   - createdBy: the user performing the edit
//
// Returns the new version or a validation error. This version is left
// untouched; version chains are append-only.
func (o *Order) NewVersion(id kernel.UUID, createdBy kernel.UUID) (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	original := o.OriginalID()

	next := &Order{
		orderType:     o.orderType,
		customerID:    o.customerID,
		paymentMethod: o.paymentMethod,
		paymentStatus: o.paymentStatus,
		status:        o.status,
		total:         o.total,
		amountPaid:    o.amountPaid,
		pickupNumber:  o.pickupNumber,
		storageID:     o.storageID,
		mainOrderID:   &original,
		isMainOrder:   true,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(next.setID(id), next.setCreatedBy(createdBy)); err != nil {
		return nil, err
	}

	return next, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setPaymentStatus(status PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.paymentStatus = status
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setTotal(total int) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total is invalid", fmt.Errorf("%d is negative", total))
	}
	o.total = total
	return nil
}

func (o *Order) setAmountPaid(amountPaid int) error {
	if amountPaid < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amountPaid is invalid", fmt.Errorf("%d is negative", amountPaid))
	}
	o.amountPaid = amountPaid
	return nil
}

func (o *Order) setPickupNumber(pickupNumber int) error {
	if pickupNumber < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"pickupNumber is invalid",
			fmt.Errorf("%d is negative", pickupNumber),
		)
	}
	o.pickupNumber = pickupNumber
	return nil
}

func (o *Order) setStorageID(storageID *kernel.UUID) error {
	if storageID != nil {
		if err := storageID.Validate(); err != nil {
			return err
		}
	}
	o.storageID = storageID
	return nil
}

func (o *Order) setMainOrderID(mainOrderID *kernel.UUID) error {
	if mainOrderID != nil {
		if err := mainOrderID.Validate(); err != nil {
			return err
		}
	}
	o.mainOrderID = mainOrderID
	return nil
}

func (o *Order) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	o.createdBy = createdBy
	return nil
}
