package queries

import (
	"context"

	"logistics/internal/core/ports"
)

// GetOrderZonesQueryHandler passes the zone classification through from the
// optimization backend.
type GetOrderZonesQueryHandler struct {
	optimizer ports.OptimizerClient
}

// NewGetOrderZonesQueryHandler creates a handler backed by the optimizer
// client.
func NewGetOrderZonesQueryHandler(optimizer ports.OptimizerClient) GetOrderZonesQueryHandler {
	return GetOrderZonesQueryHandler{optimizer: optimizer}
}

// Handle returns the zone classification for the selection.
func (h GetOrderZonesQueryHandler) Handle(
	ctx context.Context,
	query GetOrderZonesQuery,
) (*ports.ZoneClassification, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.optimizer.OrderZones(ctx, query.OrderIDs())
}
