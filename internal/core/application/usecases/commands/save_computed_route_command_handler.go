package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/ports"
)

// SaveComputedRouteResult reports the persisted route and the member orders
// whose status cascade failed. Failed orders are left for the operator to
// retry; the route itself is never rolled back.
type SaveComputedRouteResult struct {
	Route          *route.Route
	FailedOrderIDs []kernel.ID
}

// SaveComputedRouteCommandHandler persists a computed route candidate and
// claims its member orders.
//
// Example:
//
//	handler := NewSaveComputedRouteCommandHandler(routeClient, orderClient)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("save failed: %w", err)
//	}
//	// result.Route carries the backend-assigned identifier
type SaveComputedRouteCommandHandler struct {
	routes ports.RouteClient
	orders ports.OrderClient
}

// NewSaveComputedRouteCommandHandler creates a handler backed by the
// persistence backend's domain clients.
func NewSaveComputedRouteCommandHandler(
	routes ports.RouteClient,
	orders ports.OrderClient,
) SaveComputedRouteCommandHandler {
	return SaveComputedRouteCommandHandler{
		routes: routes,
		orders: orders,
	}
}

// Handle persists the route first, then cascades every member order to in
// progress. Per-order failures are collected into the result; a failure to
// persist the route itself fails the whole operation before any order is
// touched.
func (h *SaveComputedRouteCommandHandler) Handle(
	ctx context.Context,
	cmd SaveComputedRouteCommand,
) (SaveComputedRouteResult, error) {
	if err := cmd.Validate(); err != nil {
		return SaveComputedRouteResult{}, err
	}

	aggregate, err := route.NewRoute(
		cmd.OrderIDs(),
		cmd.Stops(),
		cmd.TotalDistance(),
		cmd.EstimatedMinutes(),
	)
	if err != nil {
		return SaveComputedRouteResult{}, err
	}

	if courierID := cmd.CourierID(); courierID != nil {
		if err = aggregate.AssignCourier(*courierID); err != nil {
			return SaveComputedRouteResult{}, err
		}
	}
	if date := cmd.DeliveryDate(); date != nil {
		if err = aggregate.ScheduleDelivery(*date); err != nil {
			return SaveComputedRouteResult{}, err
		}
	}

	stored, err := h.routes.Create(ctx, aggregate)
	if err != nil {
		return SaveComputedRouteResult{}, err
	}

	failed := claimOrders(ctx, h.orders, stored.ID(), stored.OrderIDs())

	return SaveComputedRouteResult{
		Route:          stored,
		FailedOrderIDs: failed,
	}, nil
}
