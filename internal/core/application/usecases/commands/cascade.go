package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
)

// The order-status cascades below implement the denormalized Order<->Route
// synchronization: no backend cascade exists, so every membership change is
// followed by explicit per-order updates. Each cascade attempts every order
// and reports the failed subset instead of aborting on the first error;
// nothing that already succeeded is rolled back, and nothing is retried.

func claimOrders(
	ctx context.Context,
	orders ports.OrderClient,
	routeID kernel.ID,
	ids []kernel.ID,
) []kernel.ID {
	return cascade(ctx, orders, ids, func(o *order.Order) error {
		return o.JoinRoute(routeID)
	})
}

func releaseOrders(ctx context.Context, orders ports.OrderClient, ids []kernel.ID) []kernel.ID {
	return cascade(ctx, orders, ids, func(o *order.Order) error {
		return o.LeaveRoute()
	})
}

func deliverOrders(ctx context.Context, orders ports.OrderClient, ids []kernel.ID) []kernel.ID {
	return cascade(ctx, orders, ids, func(o *order.Order) error {
		return o.MarkDelivered()
	})
}

func cascade(
	ctx context.Context,
	orders ports.OrderClient,
	ids []kernel.ID,
	transition func(*order.Order) error,
) []kernel.ID {
	var failed []kernel.ID
	for _, id := range ids {
		aggregate, err := orders.Get(ctx, id)
		if err != nil {
			failed = append(failed, id)
			continue
		}
		if err := transition(aggregate); err != nil {
			failed = append(failed, id)
			continue
		}
		if err := orders.Update(ctx, aggregate); err != nil {
			failed = append(failed, id)
		}
	}
	return failed
}
