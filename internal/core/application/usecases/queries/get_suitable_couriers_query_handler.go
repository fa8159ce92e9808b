package queries

import (
	"context"

	"logistics/internal/core/ports"
)

// GetSuitableCouriersQueryHandler passes the suitability advisory through
// from the optimization backend.
type GetSuitableCouriersQueryHandler struct {
	optimizer ports.OptimizerClient
}

// NewGetSuitableCouriersQueryHandler creates a handler backed by the
// optimizer client.
func NewGetSuitableCouriersQueryHandler(optimizer ports.OptimizerClient) GetSuitableCouriersQueryHandler {
	return GetSuitableCouriersQueryHandler{optimizer: optimizer}
}

// Handle returns the ranked advisory list for the selection.
func (h GetSuitableCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetSuitableCouriersQuery,
) ([]ports.SuitableCourier, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.optimizer.SuitableCouriers(ctx, query.OrderIDs())
}
