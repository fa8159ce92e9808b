package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/ports"
)

// CancelRouteResult reports the cancelled route and the member orders whose
// release cascade failed.
type CancelRouteResult struct {
	Route          *route.Route
	FailedOrderIDs []kernel.ID
}

// CancelRouteCommandHandler cancels a route. Cancellation is legal from
// pending only; a route that was handed to a courier or completed stays as
// it is.
type CancelRouteCommandHandler struct {
	routes ports.RouteClient
	orders ports.OrderClient
}

// NewCancelRouteCommandHandler creates a handler backed by the persistence
// backend's domain clients.
func NewCancelRouteCommandHandler(
	routes ports.RouteClient,
	orders ports.OrderClient,
) CancelRouteCommandHandler {
	return CancelRouteCommandHandler{
		routes: routes,
		orders: orders,
	}
}

// Handle marks the route cancelled, persists it, then releases every member
// order back to ready. The orders were never delivered, so they return to
// the selectable pool.
func (h *CancelRouteCommandHandler) Handle(
	ctx context.Context,
	cmd CancelRouteCommand,
) (CancelRouteResult, error) {
	if err := cmd.Validate(); err != nil {
		return CancelRouteResult{}, err
	}

	aggregate, err := h.routes.Get(ctx, cmd.RouteID())
	if err != nil {
		return CancelRouteResult{}, err
	}

	if err = aggregate.Cancel(); err != nil {
		return CancelRouteResult{}, err
	}

	if err = h.routes.Update(ctx, aggregate); err != nil {
		return CancelRouteResult{}, err
	}

	failed := releaseOrders(ctx, h.orders, aggregate.OrderIDs())

	return CancelRouteResult{
		Route:          aggregate,
		FailedOrderIDs: failed,
	}, nil
}
