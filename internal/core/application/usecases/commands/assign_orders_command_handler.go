package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// AssignOrdersResult reports how many of the submitted orders the
// optimization backend placed onto routes.
type AssignOrdersResult struct {
	OrdersAssigned int
}

// AssignOrdersCommandHandler delegates direct assignment to the optimization
// backend.
type AssignOrdersCommandHandler struct {
	optimizer ports.OptimizerClient
}

// NewAssignOrdersCommandHandler creates a handler backed by the optimizer
// client.
func NewAssignOrdersCommandHandler(optimizer ports.OptimizerClient) AssignOrdersCommandHandler {
	return AssignOrdersCommandHandler{
		optimizer: optimizer,
	}
}

// Handle relays the selection to the optimization backend and returns its
// assigned count.
func (h *AssignOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd AssignOrdersCommand,
) (AssignOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignOrdersResult{}, err
	}

	assigned, err := h.optimizer.AssignOrders(ctx, cmd.OrderIDs(), cmd.CourierID(), cmd.City())
	if err != nil {
		return AssignOrdersResult{}, err
	}

	return AssignOrdersResult{OrdersAssigned: assigned}, nil
}
