package queries

import (
	"context"

	"logistics/internal/core/ports"
)

// GetCourierStatusQueryHandler fetches a courier's workload snapshot from
// the optimization backend.
type GetCourierStatusQueryHandler struct {
	optimizer ports.OptimizerClient
}

// NewGetCourierStatusQueryHandler creates a handler backed by the optimizer
// client.
func NewGetCourierStatusQueryHandler(optimizer ports.OptimizerClient) GetCourierStatusQueryHandler {
	return GetCourierStatusQueryHandler{optimizer: optimizer}
}

// Handle returns the courier's workload snapshot.
func (h GetCourierStatusQueryHandler) Handle(
	ctx context.Context,
	query GetCourierStatusQuery,
) (*ports.CourierWorkload, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.optimizer.CourierStatus(ctx, query.CourierID())
}
