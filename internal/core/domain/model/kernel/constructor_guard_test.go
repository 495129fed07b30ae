package kernel_test

import (
	"errors"
	"testing"

	"laundromat/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_passes", func(t *testing.T) {
		guard := kernel.NewConstructorGuard()

		assert.NoError(t, guard.Validate(errors.New("not constructed")))
		assert.NoError(t, guard.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var guard kernel.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := guard.Validate(expectedError)

		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		var guard kernel.ConstructorGuard

		err := guard.Validate(nil)

		assert.Equal(t, kernel.ErrDefaultConstructorGuard, err)
	})

	t.Run("guard_copies_keep_constructed_state", func(t *testing.T) {
		guard := kernel.NewConstructorGuard()
		guardCopy := guard

		assert.NoError(t, guardCopy.Validate(errors.New("not constructed")))
	})
}

// Exercises the guard the way the domain entities embed it: private fields,
// a constructor that validates, and a Validate method that rejects bare
// struct literals.
func TestConstructorGuard_EmbeddedUsage(t *testing.T) {
	type payment struct {
		amount int
		guard  kernel.ConstructorGuard
	}

	errPaymentNotConstructed := errors.New("payment must be created via newPayment")

	newPayment := func(amount int) (payment, error) {
		if amount < 0 {
			return payment{}, errors.New("amount cannot be negative")
		}
		return payment{
			amount: amount,
			guard:  kernel.NewConstructorGuard(),
		}, nil
	}

	t.Run("constructed_object_validates", func(t *testing.T) {
		p, err := newPayment(35)

		require.NoError(t, err)
		assert.NoError(t, p.guard.Validate(errPaymentNotConstructed))
		assert.Equal(t, 35, p.amount)
	})

	t.Run("zero_value_object_fails_validation", func(t *testing.T) {
		var p payment

		err := p.guard.Validate(errPaymentNotConstructed)

		assert.Equal(t, errPaymentNotConstructed, err)
	})

	t.Run("constructor_still_enforces_its_own_rules", func(t *testing.T) {
		_, err := newPayment(-1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount cannot be negative")
	})
}
