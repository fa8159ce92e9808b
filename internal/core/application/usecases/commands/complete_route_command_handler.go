package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/ports"
)

// CompleteRouteResult reports the completed route and the member orders
// whose delivery cascade failed.
type CompleteRouteResult struct {
	Route          *route.Route
	FailedOrderIDs []kernel.ID
}

// CompleteRouteCommandHandler finalizes a route. Completion is irreversible:
// there is no corresponding uncomplete operation, and completing an already
// terminal route is rejected before anything is written.
type CompleteRouteCommandHandler struct {
	routes ports.RouteClient
	orders ports.OrderClient
}

// NewCompleteRouteCommandHandler creates a handler backed by the persistence
// backend's domain clients.
func NewCompleteRouteCommandHandler(
	routes ports.RouteClient,
	orders ports.OrderClient,
) CompleteRouteCommandHandler {
	return CompleteRouteCommandHandler{
		routes: routes,
		orders: orders,
	}
}

// Handle marks the route completed, persists it, then cascades every member
// order to delivered. The delivery cascade is idempotent, so a partially
// failed completion can be re-run: already delivered orders are no-ops.
func (h *CompleteRouteCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteRouteCommand,
) (CompleteRouteResult, error) {
	if err := cmd.Validate(); err != nil {
		return CompleteRouteResult{}, err
	}

	aggregate, err := h.routes.Get(ctx, cmd.RouteID())
	if err != nil {
		return CompleteRouteResult{}, err
	}

	if err = aggregate.Complete(); err != nil {
		return CompleteRouteResult{}, err
	}

	if err = h.routes.Update(ctx, aggregate); err != nil {
		return CompleteRouteResult{}, err
	}

	failed := deliverOrders(ctx, h.orders, aggregate.OrderIDs())

	return CompleteRouteResult{
		Route:          aggregate,
		FailedOrderIDs: failed,
	}, nil
}
