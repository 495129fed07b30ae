package order_test

import (
	"fmt"
	"testing"

	"laundromat/internal/core/domain/model/order"
	"laundromat/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.InProgress))
		assert.Equal(t, 3, int(order.Completed))
		assert.Equal(t, 4, int(order.Delivered))
		assert.Equal(t, 5, int(order.Cancelled))
		assert.Equal(t, 6, int(order.Damaged))
		assert.Equal(t, 7, int(order.Lost))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.InProgress,
			order.Completed,
			order.Delivered,
			order.Cancelled,
			order.Damaged,
			order.Lost,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(8),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct string representations", func(t *testing.T) {
		assert.Equal(t, "Pending", order.Pending.String())
		assert.Equal(t, "InProgress", order.InProgress.String())
		assert.Equal(t, "Completed", order.Completed.String())
		assert.Equal(t, "Delivered", order.Delivered.String())
		assert.Equal(t, "Cancelled", order.Cancelled.String())
		assert.Equal(t, "Damaged", order.Damaged.String())
		assert.Equal(t, "Lost", order.Lost.String())
		assert.Equal(t, "Unknown", order.Unknown.String())
		assert.Equal(t, "Unknown", order.Status(42).String())
	})
}

func TestStatus_IsReleased(t *testing.T) {
	t.Run("only Delivered is released", func(t *testing.T) {
		assert.True(t, order.Delivered.IsReleased())

		notReleased := []order.Status{
			order.Pending,
			order.InProgress,
			order.Completed,
			order.Cancelled,
			order.Damaged,
			order.Lost,
		}
		for _, status := range notReleased {
			assert.False(t, status.IsReleased(), "%s must not be released", status)
		}
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should allow the linear workflow", func(t *testing.T) {
		steps := []struct {
			from order.Status
			to   order.Status
		}{
			{order.Pending, order.InProgress},
			{order.InProgress, order.Completed},
			{order.Completed, order.Delivered},
		}

		for _, step := range steps {
			next, err := step.from.TransitionTo(step.to)
			require.NoError(t, err)
			assert.Equal(t, step.to, next)
		}
	})

	t.Run("should allow forward jumps", func(t *testing.T) {
		next, err := order.Pending.TransitionTo(order.Delivered)
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, next)
	})

	t.Run("should allow side exits from any non-terminal state", func(t *testing.T) {
		for _, from := range []order.Status{order.Pending, order.InProgress, order.Completed} {
			for _, to := range []order.Status{order.Cancelled, order.Damaged, order.Lost} {
				next, err := from.TransitionTo(to)
				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, next)
			}
		}
	})

	t.Run("should allow re-applying the current status", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Completed, order.Cancelled} {
			next, err := status.TransitionTo(status)
			require.NoError(t, err, "%s -> %s", status, status)
			assert.Equal(t, status, next)
		}
	})

	t.Run("should reject backward moves along the main line", func(t *testing.T) {
		steps := []struct {
			from order.Status
			to   order.Status
		}{
			{order.InProgress, order.Pending},
			{order.Completed, order.Pending},
			{order.Completed, order.InProgress},
		}

		for _, step := range steps {
			_, err := step.from.TransitionTo(step.to)
			require.Error(t, err, "%s -> %s must fail", step.from, step.to)
			assert.Contains(t, err.Error(), "backward")
		}
	})

	t.Run("should reject reinstating a side-exited order", func(t *testing.T) {
		for _, from := range []order.Status{order.Cancelled, order.Damaged, order.Lost} {
			for _, to := range []order.Status{order.Pending, order.InProgress, order.Completed} {
				_, err := from.TransitionTo(to)
				require.Error(t, err, "%s -> %s must fail", from, to)
			}
		}
	})

	t.Run("should allow delivering a cancelled order", func(t *testing.T) {
		// This is the transition that frees a cancelled order's rack
		// capacity and pickup number.
		next, err := order.Cancelled.TransitionTo(order.Delivered)
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, next)
	})

	t.Run("should reject any transition out of Delivered", func(t *testing.T) {
		for _, to := range []order.Status{
			order.Pending,
			order.InProgress,
			order.Completed,
			order.Cancelled,
			order.Damaged,
			order.Lost,
		} {
			_, err := order.Delivered.TransitionTo(to)
			require.Error(t, err, "Delivered -> %s must fail", to)
			assert.Contains(t, err.Error(), "terminal")
		}
	})

	t.Run("should reject invalid target statuses", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Unknown)
		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}
