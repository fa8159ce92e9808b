package http_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	inhttp "logistics/internal/adapters/in/http"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/ports"
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

// testBackends groups the mocked clients behind a fully wired server.
type testBackends struct {
	orders    *MockOrderClient
	routes    *MockRouteClient
	couriers  *MockCourierClient
	optimizer *MockOptimizerClient
}

func newTestServer(t *testing.T) (*echo.Echo, *testBackends) {
	t.Helper()

	backends := &testBackends{
		orders:    new(MockOrderClient),
		routes:    new(MockRouteClient),
		couriers:  new(MockCourierClient),
		optimizer: new(MockOptimizerClient),
	}

	server := inhttp.NewServer(
		commands.NewSaveComputedRouteCommandHandler(backends.routes, backends.orders),
		commands.NewReviseRouteCommandHandler(backends.routes, backends.orders),
		commands.NewCompleteRouteCommandHandler(backends.routes, backends.orders),
		commands.NewCancelRouteCommandHandler(backends.routes, backends.orders),
		commands.NewAssignOrdersCommandHandler(backends.optimizer),
		queries.NewComputeCandidateRouteQueryHandler(backends.orders, backends.optimizer),
		queries.NewGetSuitableCouriersQueryHandler(backends.optimizer),
		queries.NewGetOrderZonesQueryHandler(backends.optimizer),
		queries.NewGetCourierStatusQueryHandler(backends.optimizer),
		queries.NewGetCourierStatisticsQueryHandler(backends.routes),
		queries.NewGetRoutePlanningDataQueryHandler(backends.orders, backends.couriers),
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e, backends
}

func doRequest(
	t *testing.T,
	e *echo.Echo,
	method string,
	target string,
	body string,
) *httptest.ResponseRecorder {
	t.Helper()

	var request = httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, request)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, out any) {
	t.Helper()

	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), out))
}

func mustID(t *testing.T, raw int64) kernel.ID {
	t.Helper()

	id, err := kernel.NewID(raw)
	require.NoError(t, err)
	return id
}
