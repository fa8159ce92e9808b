package queries_test

import (
	"context"
	"testing"

	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderClient struct{ mock.Mock }

func (m *MockOrderClient) List(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderClient) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderClient) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockRouteClient struct{ mock.Mock }

func (m *MockRouteClient) List(ctx context.Context) ([]*route.Route, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*route.Route), args.Error(1)
}

func (m *MockRouteClient) Get(ctx context.Context, id kernel.ID) (*route.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

func (m *MockRouteClient) Create(ctx context.Context, aggregate *route.Route) (*route.Route, error) {
	args := m.Called(ctx, aggregate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

func (m *MockRouteClient) Update(ctx context.Context, aggregate *route.Route) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockCourierClient struct{ mock.Mock }

func (m *MockCourierClient) List(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

type MockOptimizerClient struct{ mock.Mock }

func (m *MockOptimizerClient) ComputeRoute(
	ctx context.Context,
	stops []ports.OrderStop,
) (*ports.RouteComputation, error) {
	args := m.Called(ctx, stops)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.RouteComputation), args.Error(1)
}

func (m *MockOptimizerClient) AssignOrders(
	ctx context.Context,
	orderIDs []kernel.ID,
	courierID *kernel.ID,
	city string,
) (int, error) {
	args := m.Called(ctx, orderIDs, courierID, city)
	return args.Int(0), args.Error(1)
}

func (m *MockOptimizerClient) SuitableCouriers(
	ctx context.Context,
	orderIDs []kernel.ID,
) ([]ports.SuitableCourier, error) {
	args := m.Called(ctx, orderIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.SuitableCourier), args.Error(1)
}

func (m *MockOptimizerClient) OrderZones(
	ctx context.Context,
	orderIDs []kernel.ID,
) (*ports.ZoneClassification, error) {
	args := m.Called(ctx, orderIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.ZoneClassification), args.Error(1)
}

func (m *MockOptimizerClient) CourierStatus(
	ctx context.Context,
	courierID kernel.ID,
) (*ports.CourierWorkload, error) {
	args := m.Called(ctx, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.CourierWorkload), args.Error(1)
}

func mustID(t *testing.T, raw int64) kernel.ID {
	t.Helper()

	id, err := kernel.NewID(raw)
	require.NoError(t, err)
	return id
}
