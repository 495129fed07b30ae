package order

import (
	"fmt"

	"laundromat/internal/pkg/errs"
)

// PaymentMethod identifies how the customer settles an order.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined payment method.
	PaymentMethodUnknown PaymentMethod = iota

	// Cash payment at the counter.
	Cash

	// Card payment via terminal.
	Card

	// Transfer is a bank or mobile-money transfer.
	Transfer
)

// PaymentStatus tracks how much of the order total has been settled.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined payment status.
	PaymentStatusUnknown PaymentStatus = iota

	// Unpaid means nothing has been received yet.
	Unpaid

	// Partial means a deposit has been received.
	Partial

	// Paid means the order is fully settled.
	Paid
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown: "Unknown",
		Cash:                 "Cash",
		Card:                 "Card",
		Transfer:             "Transfer",
	}
}

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusUnknown: "Unknown",
		Unpaid:               "Unpaid",
		Partial:              "Partial",
		Paid:                 "Paid",
	}
}

// Validate checks if the PaymentMethod value is valid.
func (m PaymentMethod) Validate() error {
	if m != Cash && m != Card && m != Transfer {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method is invalid",
			fmt.Errorf("%d is not a valid payment method", m),
		)
	}
	return nil
}

// String returns the human-readable name of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the PaymentStatus value is valid.
func (s PaymentStatus) Validate() error {
	if s != Unpaid && s != Partial && s != Paid {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
