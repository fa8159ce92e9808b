package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// ReviseRouteResult reports the updated route and the orders whose status
// synchronization failed on either side of the membership diff.
type ReviseRouteResult struct {
	Route          *route.Route
	FailedOrderIDs []kernel.ID
}

// ReviseRouteCommandHandler replaces a route's membership and synchronizes
// member order statuses: removed orders go back to ready, added orders are
// claimed, retained orders are left untouched.
type ReviseRouteCommandHandler struct {
	routes ports.RouteClient
	orders ports.OrderClient
}

// NewReviseRouteCommandHandler creates a handler backed by the persistence
// backend's domain clients.
func NewReviseRouteCommandHandler(
	routes ports.RouteClient,
	orders ports.OrderClient,
) ReviseRouteCommandHandler {
	return ReviseRouteCommandHandler{
		routes: routes,
		orders: orders,
	}
}

// Handle updates the route first; only then does it walk the membership
// diff. Cascade failures are collected, not rolled back: the route already
// holds the new membership, and the failed orders are reported for the
// operator to retry.
func (h *ReviseRouteCommandHandler) Handle(
	ctx context.Context,
	cmd ReviseRouteCommand,
) (ReviseRouteResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReviseRouteResult{}, err
	}

	aggregate, err := h.routes.Get(ctx, cmd.RouteID())
	if err != nil {
		return ReviseRouteResult{}, err
	}

	previous := aggregate.OrderIDs()
	if err = aggregate.ReplaceMembership(
		cmd.OrderIDs(),
		cmd.Stops(),
		cmd.TotalDistance(),
		cmd.EstimatedMinutes(),
	); err != nil {
		return ReviseRouteResult{}, err
	}

	if err = h.routes.Update(ctx, aggregate); err != nil {
		return ReviseRouteResult{}, err
	}

	diff := services.DiffMembership(previous, aggregate.OrderIDs())
	failed := releaseOrders(ctx, h.orders, diff.ToRelease)
	failed = append(failed, claimOrders(ctx, h.orders, aggregate.ID(), diff.ToClaim)...)

	return ReviseRouteResult{
		Route:          aggregate,
		FailedOrderIDs: failed,
	}, nil
}
