package commands_test

import (
	"context"
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Route 7 holds [1,2,3]; the operator revises to [2,3,4]. Order 1 must end
// ready, order 4 in progress, orders 2 and 3 untouched.
func TestReviseRouteCommandHandler_Handle_MembershipDiff(t *testing.T) {
	ctx := context.Background()
	previous := []kernel.ID{mustID(t, 1), mustID(t, 2), mustID(t, 3)}
	next := []kernel.ID{mustID(t, 2), mustID(t, 3), mustID(t, 4)}
	cmd, err := commands.NewReviseRouteCommand(
		mustID(t, 7), next, []string{"a", "b", "c"}, 5000, 25,
	)
	require.NoError(t, err)

	existing := pendingRoute(t, 7, previous, []string{"x", "y", "z"})
	routes := new(MockRouteClient)
	routes.On("Get", ctx, mustID(t, 7)).Return(existing, nil).Once()
	routes.On("Update", ctx, existing).Return(nil).Once()

	released := routedOrder(t, 1, 7, "x")
	claimed := readyOrder(t, 4, "c")

	orderClient := new(MockOrderClient)
	orderClient.On("Get", ctx, mustID(t, 1)).Return(released, nil).Once()
	orderClient.On("Update", ctx, released).Return(nil).Once()
	orderClient.On("Get", ctx, mustID(t, 4)).Return(claimed, nil).Once()
	orderClient.On("Update", ctx, claimed).Return(nil).Once()

	h := commands.NewReviseRouteCommandHandler(routes, orderClient)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, result.FailedOrderIDs)
	assert.Equal(t, next, result.Route.OrderIDs())
	assert.Equal(t, int64(5000), result.Route.TotalDistance().Meters())

	assert.Equal(t, order.Ready, released.Status())
	assert.Nil(t, released.Route())
	assert.Equal(t, order.InProgress, claimed.Status())
	require.NotNil(t, claimed.Route())
	assert.Equal(t, int64(7), claimed.Route().Int64())

	// Retained orders 2 and 3 are never loaded or written.
	orderClient.AssertExpectations(t)
	orderClient.AssertNotCalled(t, "Get", ctx, mustID(t, 2))
	orderClient.AssertNotCalled(t, "Get", ctx, mustID(t, 3))
}

func TestReviseRouteCommandHandler_Handle_RouteUpdateFailureStopsCascade(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewReviseRouteCommand(
		mustID(t, 7), []kernel.ID{mustID(t, 2)}, []string{"b"}, 1000, 5,
	)

	existing := pendingRoute(t, 7, []kernel.ID{mustID(t, 1)}, []string{"a"})
	routes := new(MockRouteClient)
	routes.On("Get", ctx, mustID(t, 7)).Return(existing, nil).Once()
	routes.On("Update", ctx, existing).Return(errors.New("update error")).Once()

	orderClient := new(MockOrderClient)

	h := commands.NewReviseRouteCommandHandler(routes, orderClient)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	orderClient.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestReviseRouteCommandHandler_Handle_CollectsCascadeFailures(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewReviseRouteCommand(
		mustID(t, 7), []kernel.ID{mustID(t, 2)}, []string{"b"}, 1000, 5,
	)

	existing := pendingRoute(t, 7, []kernel.ID{mustID(t, 1)}, []string{"a"})
	routes := new(MockRouteClient)
	routes.On("Get", ctx, mustID(t, 7)).Return(existing, nil).Once()
	routes.On("Update", ctx, existing).Return(nil).Once()

	orderClient := new(MockOrderClient)
	orderClient.On("Get", ctx, mustID(t, 1)).Return(nil, errors.New("backend down")).Once()
	claimed := readyOrder(t, 2, "b")
	orderClient.On("Get", ctx, mustID(t, 2)).Return(claimed, nil).Once()
	orderClient.On("Update", ctx, claimed).Return(errors.New("write failed")).Once()

	h := commands.NewReviseRouteCommandHandler(routes, orderClient)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, []kernel.ID{mustID(t, 1), mustID(t, 2)}, result.FailedOrderIDs)
}

func TestReviseRouteCommandHandler_Handle_TerminalRouteRejected(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewReviseRouteCommand(
		mustID(t, 7), []kernel.ID{mustID(t, 2)}, []string{"b"}, 1000, 5,
	)

	completed, err := route.RestoreRoute(
		mustID(t, 7), nil, []kernel.ID{mustID(t, 1)}, []string{"a"},
		1000, 5, route.Completed, nil, nil,
	)
	require.NoError(t, err)

	routes := new(MockRouteClient)
	routes.On("Get", ctx, mustID(t, 7)).Return(completed, nil).Once()

	h := commands.NewReviseRouteCommandHandler(routes, new(MockOrderClient))
	_, err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, route.ErrRouteIsTerminal)
	routes.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
