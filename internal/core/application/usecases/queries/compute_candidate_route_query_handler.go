package queries

import (
	"context"

	"logistics/internal/core/ports"
)

// ComputeCandidateRouteQueryHandler resolves the selected orders' addresses
// and asks the optimization backend for an optimized candidate.
type ComputeCandidateRouteQueryHandler struct {
	orders    ports.OrderClient
	optimizer ports.OptimizerClient
}

// NewComputeCandidateRouteQueryHandler creates a handler backed by the order
// domain client and the optimizer client.
func NewComputeCandidateRouteQueryHandler(
	orders ports.OrderClient,
	optimizer ports.OptimizerClient,
) ComputeCandidateRouteQueryHandler {
	return ComputeCandidateRouteQueryHandler{
		orders:    orders,
		optimizer: optimizer,
	}
}

// Handle loads each selected order to obtain its delivery address, then
// submits the selection for optimization. The normalized result is returned
// as-is; saving it is a separate command.
func (h ComputeCandidateRouteQueryHandler) Handle(
	ctx context.Context,
	query ComputeCandidateRouteQuery,
) (*ports.RouteComputation, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stops := make([]ports.OrderStop, 0, len(query.OrderIDs()))
	for _, id := range query.OrderIDs() {
		aggregate, err := h.orders.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		stops = append(stops, ports.OrderStop{
			ID:      aggregate.ID(),
			Address: aggregate.Address(),
		})
	}

	return h.optimizer.ComputeRoute(ctx, stops)
}
