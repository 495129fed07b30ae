package commands_test

import (
	"testing"

	"laundromat/internal/core/application/usecases/commands"
	"laundromat/internal/core/domain/model/kernel"
	"laundromat/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCleaningLines() []commands.CleaningLine {
	return []commands.CleaningLine{
		{Name: "coat", UnitPrice: 15, Quantity: 1},
		{Name: "dress", UnitPrice: 10, Quantity: 2},
	}
}

func TestNewCreateOrderCommand_ValidPressing(t *testing.T) {
	id := kernel.NewUUID()
	customerID := kernel.NewUUID()
	userID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		id, order.Pressing, customerID, order.Cash, order.Unpaid, 0,
		13, nil, 0, userID,
	)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, order.Pressing, cmd.OrderType())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, 13, cmd.PressingQuantity())
	assert.Empty(t, cmd.CleaningLines())
	assert.Equal(t, 0, cmd.TicketNumber())
	assert.Equal(t, userID, cmd.CreatedBy())
}

func TestNewCreateOrderCommand_ValidCleaning(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), order.Cleaning, kernel.NewUUID(), order.Card, order.Paid, 35,
		0, validCleaningLines(), 0, kernel.NewUUID(),
	)
	require.NoError(t, err)
	assert.Equal(t, order.Cleaning, cmd.OrderType())
	assert.Len(t, cmd.CleaningLines(), 2)
	assert.Equal(t, 35, cmd.AmountPaid())
}

func TestNewCreateOrderCommand_TicketNumberPath(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), order.Pressing, kernel.NewUUID(), order.Cash, order.Unpaid, 0,
		1, nil, 42, kernel.NewUUID(),
	)
	require.NoError(t, err)
	assert.Equal(t, 42, cmd.TicketNumber())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(
		invalidID, order.Pressing, kernel.NewUUID(), order.Cash, order.Unpaid, 0,
		1, nil, 0, kernel.NewUUID(),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_PressingQuantityRequired(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), order.Pressing, kernel.NewUUID(), order.Cash, order.Unpaid, 0,
		0, nil, 0, kernel.NewUUID(),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPressingQuantityIsInvalid)
}

func TestNewCreateOrderCommand_PressingRejectsCleaningLines(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), order.Pressing, kernel.NewUUID(), order.Cash, order.Unpaid, 0,
		1, validCleaningLines(), 0, kernel.NewUUID(),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemsPayloadMismatch)
}

func TestNewCreateOrderCommand_CleaningLinesRequired(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), order.Cleaning, kernel.NewUUID(), order.Cash, order.Unpaid, 0,
		0, nil, 0, kernel.NewUUID(),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCleaningLinesAreRequired)
}

func TestNewCreateOrderCommand_CleaningLineInvalid(t *testing.T) {
	lines := []commands.CleaningLine{{Name: "", UnitPrice: 10, Quantity: 1}}
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), order.Cleaning, kernel.NewUUID(), order.Cash, order.Unpaid, 0,
		0, lines, 0, kernel.NewUUID(),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCleaningLineIsInvalid)
}

func TestNewCreateOrderCommand_NegativeAmountPaid(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), order.Pressing, kernel.NewUUID(), order.Cash, order.Unpaid, -1,
		1, nil, 0, kernel.NewUUID(),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAmountPaidIsInvalid)
}

func TestNewCreateOrderCommand_NegativeTicketNumber(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), order.Pressing, kernel.NewUUID(), order.Cash, order.Unpaid, 0,
		1, nil, -5, kernel.NewUUID(),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTicketNumberIsInvalid)
}

func TestCreateOrderCommand_ValidateNotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
