package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// OrderStop is an order submitted to the optimization backend: its identifier
// and the delivery address the backend geocodes.
type OrderStop struct {
	ID      kernel.ID
	Address string
}

// Point is a geographic coordinate on the computed route geometry.
type Point struct {
	Lat float64
	Lng float64
}

// RouteComputation is a normalized optimization result. The adapter reconciles
// the backend's variant field names and unit choices before the result reaches
// the application layer: the sequence is a permutation of the submitted
// orders, the stops are parallel to it, and the distance is in canonical
// meters.
type RouteComputation struct {
	// OrderIDs is the optimized visiting sequence.
	OrderIDs []kernel.ID

	// Stops holds the delivery addresses parallel to OrderIDs.
	Stops []string

	// TotalDistance is the aggregate travel distance.
	TotalDistance kernel.Distance

	// EstimatedMinutes is the estimated travel time.
	EstimatedMinutes int

	// OrderedPoints holds the stop coordinates in visiting sequence, when the
	// backend geocoded the addresses.
	OrderedPoints []Point

	// Geometry is the polyline of the computed path, when available.
	Geometry []Point
}

// SuitableCourier describes a courier the optimization backend judged able to
// take on a candidate order selection, with the workload figures behind the
// judgement.
type SuitableCourier struct {
	CourierID         kernel.ID
	Username          string
	WorkAreaID        *kernel.ID
	WorkAreaName      string
	CarID             kernel.ID
	CarNumber         string
	CarSize           float64
	CarWeight         float64
	CurrentRoutes     int
	CurrentHours      float64
	EstimatedNewHours float64
	TotalHours        float64
}

// ZonedOrder is an order annotated with the delivery zone the optimization
// backend resolved from its address.
type ZonedOrder struct {
	OrderID  kernel.ID
	Address  string
	ZoneID   *kernel.ID
	ZoneName string
}

// ZoneClassification groups a selection of orders by delivery zone.
type ZoneClassification struct {
	Orders        []ZonedOrder
	ZonesInvolved map[kernel.ID]string
	TotalZones    int
}

// CourierWorkload is the optimization backend's view of a courier's current
// load.
type CourierWorkload struct {
	CourierID      kernel.ID
	Username       string
	CarNumber      string
	RoutesToday    int
	EstimatedHours float64
}

// OptimizerClient is the contract for the route optimization backend.
type OptimizerClient interface {
	// ComputeRoute submits an order selection and returns the optimized
	// candidate. Nothing is persisted on either backend.
	ComputeRoute(ctx context.Context, stops []OrderStop) (*RouteComputation, error)

	// AssignOrders delegates direct assignment to the optimization backend
	// and returns the number of orders it assigned. courierID and city narrow
	// the backend's courier choice when set.
	AssignOrders(ctx context.Context, orderIDs []kernel.ID, courierID *kernel.ID, city string) (int, error)

	// SuitableCouriers asks which couriers can take on the given selection.
	SuitableCouriers(ctx context.Context, orderIDs []kernel.ID) ([]SuitableCourier, error)

	// OrderZones classifies a selection of orders by delivery zone.
	OrderZones(ctx context.Context, orderIDs []kernel.ID) (*ZoneClassification, error)

	// CourierStatus reports a courier's current workload.
	// Returns errs.ErrObjectNotFound (wrapped) when the backend does not know
	// the courier.
	CourierStatus(ctx context.Context, courierID kernel.ID) (*CourierWorkload, error)
}
