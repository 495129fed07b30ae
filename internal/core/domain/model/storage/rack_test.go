package storage_test

import (
	"testing"

	"laundromat/internal/core/domain/model/kernel"
	"laundromat/internal/core/domain/model/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRack(t *testing.T) *storage.Rack {
	t.Helper()

	rack, err := storage.NewRack(kernel.NewUUID(), 1, 10, 1, 10)
	require.NoError(t, err)
	return rack
}

func TestNewRack(t *testing.T) {
	t.Run("should create valid rack", func(t *testing.T) {
		id := kernel.NewUUID()

		rack, err := storage.NewRack(id, 2, 150, 151, 300)

		require.NoError(t, err)
		require.NoError(t, rack.Validate())
		assert.True(t, rack.ID().IsEqual(id))
		assert.Equal(t, 2, rack.RackNumber())
		assert.Equal(t, 150, rack.TotalCapacity())
		assert.Equal(t, 0, rack.UsedCapacity())
		assert.Equal(t, 151, rack.FromRange())
		assert.Equal(t, 300, rack.ToRange())
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		var invalidID kernel.UUID

		rack, err := storage.NewRack(invalidID, 1, 10, 1, 10)

		require.Error(t, err)
		assert.Nil(t, rack)
	})

	t.Run("should fail with non-positive capacity", func(t *testing.T) {
		rack, err := storage.NewRack(kernel.NewUUID(), 1, 0, 1, 10)

		require.Error(t, err)
		assert.Nil(t, rack)
		assert.Contains(t, err.Error(), "totalCapacity")
	})

	t.Run("should fail with inverted number range", func(t *testing.T) {
		rack, err := storage.NewRack(kernel.NewUUID(), 1, 10, 20, 10)

		require.Error(t, err)
		assert.Nil(t, rack)
	})
}

func TestRestoreRack(t *testing.T) {
	t.Run("should restore used capacity", func(t *testing.T) {
		rack, err := storage.RestoreRack(kernel.NewUUID(), 1, 10, 7, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, 7, rack.UsedCapacity())
	})

	t.Run("should reject used capacity above total", func(t *testing.T) {
		rack, err := storage.RestoreRack(kernel.NewUUID(), 1, 10, 11, 1, 10)

		require.Error(t, err)
		assert.Nil(t, rack)
	})
}

func TestRack_CanFit(t *testing.T) {
	rack := newTestRack(t)

	assert.True(t, rack.CanFit(10))
	assert.True(t, rack.CanFit(1))
	assert.False(t, rack.CanFit(11))
	assert.False(t, rack.CanFit(0))
	assert.False(t, rack.CanFit(-3))
}

func TestRack_OccupyAndRelease(t *testing.T) {
	t.Run("occupy then release restores capacity", func(t *testing.T) {
		rack := newTestRack(t)

		require.NoError(t, rack.Occupy(3))
		assert.Equal(t, 3, rack.UsedCapacity())

		require.NoError(t, rack.Occupy(7))
		assert.Equal(t, 10, rack.UsedCapacity())

		require.NoError(t, rack.Release(10))
		assert.Equal(t, 0, rack.UsedCapacity())
	})

	t.Run("occupy beyond capacity fails", func(t *testing.T) {
		rack := newTestRack(t)
		require.NoError(t, rack.Occupy(8))

		require.ErrorIs(t, rack.Occupy(3), storage.ErrCannotFitInRack)
		assert.Equal(t, 8, rack.UsedCapacity())
	})

	t.Run("release beyond used capacity fails", func(t *testing.T) {
		rack := newTestRack(t)
		require.NoError(t, rack.Occupy(2))

		require.ErrorIs(t, rack.Release(3), storage.ErrReleaseExceedsUsedCapacity)
		assert.Equal(t, 2, rack.UsedCapacity())
	})

	t.Run("non-positive counts are rejected", func(t *testing.T) {
		rack := newTestRack(t)

		require.Error(t, rack.Occupy(0))
		require.Error(t, rack.Release(-1))
	})
}

func TestRack_ContainsNumber(t *testing.T) {
	rack, err := storage.NewRack(kernel.NewUUID(), 1, 10, 5, 8)
	require.NoError(t, err)

	assert.True(t, rack.ContainsNumber(5))
	assert.True(t, rack.ContainsNumber(8))
	assert.False(t, rack.ContainsNumber(4))
	assert.False(t, rack.ContainsNumber(9))
}

func TestRack_Validate(t *testing.T) {
	t.Run("zero value rack fails validation", func(t *testing.T) {
		var rack storage.Rack

		require.ErrorIs(t, rack.Validate(), storage.ErrRackIsNotConstructed)
	})

	t.Run("nil rack fails validation", func(t *testing.T) {
		var rack *storage.Rack

		require.ErrorIs(t, rack.Validate(), storage.ErrRackIsNotConstructed)
	})
}

func TestNewAllocation(t *testing.T) {
	t.Run("should create valid allocation", func(t *testing.T) {
		orderID := kernel.NewUUID()
		rackID := kernel.NewUUID()

		a, err := storage.NewAllocation(17, orderID, rackID)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, 17, a.PickupNumber())
		assert.True(t, a.OrderID().IsEqual(orderID))
		assert.True(t, a.RackID().IsEqual(rackID))
	})

	t.Run("should reject non-positive pickup number", func(t *testing.T) {
		a, err := storage.NewAllocation(0, kernel.NewUUID(), kernel.NewUUID())

		require.Error(t, err)
		assert.Nil(t, a)
	})

	t.Run("should reject invalid order id", func(t *testing.T) {
		var invalidID kernel.UUID

		a, err := storage.NewAllocation(17, invalidID, kernel.NewUUID())

		require.Error(t, err)
		assert.Nil(t, a)
	})
}
