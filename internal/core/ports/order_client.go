package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderClient is the domain-client contract for orders on the persistence
// backend.
type OrderClient interface {
	// List retrieves all orders.
	List(ctx context.Context) ([]*order.Order, error)

	// Get retrieves a single order by identifier.
	// Returns errs.ErrObjectNotFound (wrapped) when the backend has no such
	// order.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// Update persists the full order representation, including route_status
	// and the route back-reference. The backend's PUT contract requires the
	// complete entity.
	Update(ctx context.Context, aggregate *order.Order) error
}
