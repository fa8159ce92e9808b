package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
)

// RouteClient is the domain-client contract for routes on the persistence
// backend.
type RouteClient interface {
	// List retrieves all routes.
	List(ctx context.Context) ([]*route.Route, error)

	// Get retrieves a single route by identifier.
	// Returns errs.ErrObjectNotFound (wrapped) when the backend has no such
	// route.
	Get(ctx context.Context, id kernel.ID) (*route.Route, error)

	// Create persists a new route and returns the stored aggregate with its
	// backend-assigned identifier.
	Create(ctx context.Context, aggregate *route.Route) (*route.Route, error)

	// Update persists changes to an existing route.
	Update(ctx context.Context, aggregate *route.Route) error
}
