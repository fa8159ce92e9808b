package queries_test

import (
	"context"
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoredRoute(
	t *testing.T,
	rawID int64,
	courierID *kernel.ID,
	meters int64,
	status route.Status,
	orders ...int64,
) *route.Route {
	t.Helper()

	orderIDs := make([]kernel.ID, 0, len(orders))
	stops := make([]string, 0, len(orders))
	for _, raw := range orders {
		orderIDs = append(orderIDs, mustID(t, raw))
		stops = append(stops, "address")
	}

	distance, err := kernel.NewDistanceFromMeters(meters)
	require.NoError(t, err)

	aggregate, err := route.RestoreRoute(
		mustID(t, rawID), courierID, orderIDs, stops, distance, 10, status, nil, nil,
	)
	require.NoError(t, err)
	return aggregate
}

func TestGetCourierStatisticsQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	courierID := mustID(t, 3)
	otherID := mustID(t, 4)

	routes := new(MockRouteClient)
	routes.On("List", ctx).Return([]*route.Route{
		restoredRoute(t, 1, &courierID, 3400, route.Completed, 101, 102),
		restoredRoute(t, 2, &courierID, 1600, route.InProgress, 103),
		restoredRoute(t, 3, &otherID, 9000, route.Completed, 104),
		restoredRoute(t, 4, nil, 500, route.Pending, 105),
	}, nil).Once()

	query, err := queries.NewGetCourierStatisticsQuery(courierID)
	require.NoError(t, err)

	h := queries.NewGetCourierStatisticsQueryHandler(routes)
	response, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, 2, response.TotalRoutes)
	assert.Equal(t, 1, response.CompletedRoutes)
	assert.InDelta(t, 5.0, response.TotalDistanceKm, 0.001)
	assert.Equal(t, 2, response.TotalOrdersDelivered)
}
