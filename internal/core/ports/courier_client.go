package ports

import (
	"context"

	"logistics/internal/core/domain/model/courier"
)

// CourierClient is the domain-client contract for the courier roster. The
// adapter assembles couriers from the backend's users, cars, and work-areas
// endpoints.
type CourierClient interface {
	// List retrieves all users with the courier role, with vehicle and
	// work-area reference data attached where available.
	List(ctx context.Context) ([]*courier.Courier, error)
}
