package queries

import (
	"context"

	"golang.org/x/sync/errgroup"

	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
)

// GetRoutePlanningDataQueryHandler loads the order list and the courier
// roster concurrently. Both lists come from the persistence backend; either
// failure fails the whole query.
type GetRoutePlanningDataQueryHandler struct {
	orders   ports.OrderClient
	couriers ports.CourierClient
}

// NewGetRoutePlanningDataQueryHandler creates a handler backed by the
// persistence backend's domain clients.
func NewGetRoutePlanningDataQueryHandler(
	orders ports.OrderClient,
	couriers ports.CourierClient,
) GetRoutePlanningDataQueryHandler {
	return GetRoutePlanningDataQueryHandler{
		orders:   orders,
		couriers: couriers,
	}
}

// Handle fetches orders and couriers in parallel and splits out the ready
// orders as the selectable subset.
func (h GetRoutePlanningDataQueryHandler) Handle(
	ctx context.Context,
	query GetRoutePlanningDataQuery,
) (GetRoutePlanningDataQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRoutePlanningDataQueryResponse{}, err
	}

	var (
		orders   []*order.Order
		couriers []*courier.Courier
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		orders, err = h.orders.List(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		couriers, err = h.couriers.List(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return GetRoutePlanningDataQueryResponse{}, err
	}

	selectable := make([]*order.Order, 0, len(orders))
	for _, aggregate := range orders {
		if aggregate.Status() == order.Ready {
			selectable = append(selectable, aggregate)
		}
	}

	return GetRoutePlanningDataQueryResponse{
		Orders:           orders,
		SelectableOrders: selectable,
		Couriers:         couriers,
	}, nil
}
