package commands_test

import (
	"context"
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignOrdersCommand(t *testing.T) {
	t.Run("empty selection is rejected", func(t *testing.T) {
		_, err := commands.NewAssignOrdersCommand(nil, nil, "")

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		cmd := commands.AssignOrdersCommand{}

		assert.ErrorIs(t, cmd.Validate(), commands.ErrAssignOrdersCommandIsNotConstructed)
	})
}

func TestAssignOrdersCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()
	selection := []kernel.ID{mustID(t, 101), mustID(t, 102)}
	courierID := mustID(t, 3)

	t.Run("relays the selection and returns the count", func(t *testing.T) {
		cmd, err := commands.NewAssignOrdersCommand(selection, &courierID, "Rīga")
		require.NoError(t, err)

		optimizer := new(MockOptimizerClient)
		optimizer.On("AssignOrders", ctx, selection, &courierID, "Rīga").Return(2, nil).Once()

		h := commands.NewAssignOrdersCommandHandler(optimizer)
		result, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 2, result.OrdersAssigned)
		optimizer.AssertExpectations(t)
	})

	t.Run("backend failure is surfaced", func(t *testing.T) {
		cmd, _ := commands.NewAssignOrdersCommand(selection, nil, "")

		optimizer := new(MockOptimizerClient)
		optimizer.On("AssignOrders", ctx, selection, (*kernel.ID)(nil), "").
			Return(0, errors.New("optimizer down")).Once()

		h := commands.NewAssignOrdersCommandHandler(optimizer)
		_, err := h.Handle(ctx, cmd)

		require.Error(t, err)
	})
}
