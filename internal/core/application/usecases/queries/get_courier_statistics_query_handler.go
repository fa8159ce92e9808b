package queries

import (
	"context"

	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/ports"
)

// GetCourierStatisticsQueryHandler aggregates a courier's statistics from
// the routes list. The backend keeps no statistics of its own; the numbers
// are recomputed on every call.
type GetCourierStatisticsQueryHandler struct {
	routes ports.RouteClient
}

// NewGetCourierStatisticsQueryHandler creates a handler backed by the route
// domain client.
func NewGetCourierStatisticsQueryHandler(routes ports.RouteClient) GetCourierStatisticsQueryHandler {
	return GetCourierStatisticsQueryHandler{routes: routes}
}

// Handle walks every persisted route and accumulates the courier's totals.
// Delivered order counts come from completed routes only.
func (h GetCourierStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetCourierStatisticsQuery,
) (GetCourierStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierStatisticsQueryResponse{}, err
	}

	routes, err := h.routes.List(ctx)
	if err != nil {
		return GetCourierStatisticsQueryResponse{}, err
	}

	response := GetCourierStatisticsQueryResponse{CourierID: query.CourierID()}
	for _, aggregate := range routes {
		courierID := aggregate.Courier()
		if courierID == nil || !courierID.IsEqual(query.CourierID()) {
			continue
		}

		response.TotalRoutes++
		response.TotalDistanceKm += aggregate.TotalDistance().Kilometers()
		if aggregate.Status() == route.Completed {
			response.CompletedRoutes++
			response.TotalOrdersDelivered += aggregate.TotalOrders()
		}
	}

	return response, nil
}
