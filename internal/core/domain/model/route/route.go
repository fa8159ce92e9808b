package route

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrRouteIsNotConstructed is returned when a Route instance was not
	// created through NewRoute or RestoreRoute.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute or RestoreRoute")

	// ErrRouteIsTerminal is returned when a membership or status change is
	// attempted on a completed or cancelled route.
	ErrRouteIsTerminal = errors.New("route is in a terminal status")
)

// Route represents an ordered sequence of delivery orders produced by the
// optimization backend and persisted by the workflow.
//
// Invariants:
//   - Membership is non-empty and free of duplicates
//   - The stop list is parallel to the membership list (same length, same
//     order)
//   - Total distance is stored in canonical meters
//   - Status transitions follow the Status state machine
//
// A route created by NewRoute has no identifier until the persistence
// backend assigns one; the domain client restores the persisted aggregate
// with RestoreRoute.
type Route struct {
	id               kernel.ID
	courierID        *kernel.ID
	orderIDs         []kernel.ID
	path             []string
	totalDistance    kernel.Distance
	estimatedMinutes int
	status           Status
	createdAt        *time.Time
	deliveryDate     *time.Time

	isConstructed bool
}

// NewRoute creates a not-yet-persisted route in Pending status from a
// normalized optimization result: the optimized order sequence, the matching
// stop addresses, and the aggregate estimates.
func NewRoute(
	orderIDs []kernel.ID,
	path []string,
	totalDistance kernel.Distance,
	estimatedMinutes int,
) (*Route, error) {
	r := &Route{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setMembership(orderIDs, path),
		r.setEstimates(totalDistance, estimatedMinutes),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRoute reconstructs a persisted route from its backend
// representation.
func RestoreRoute(
	id kernel.ID,
	courierID *kernel.ID,
	orderIDs []kernel.ID,
	path []string,
	totalDistance kernel.Distance,
	estimatedMinutes int,
	status Status,
	createdAt *time.Time,
	deliveryDate *time.Time,
) (*Route, error) {
	r := &Route{
		createdAt:     createdAt,
		deliveryDate:  deliveryDate,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setMembership(orderIDs, path),
		r.setEstimates(totalDistance, estimatedMinutes),
		r.setStatus(status),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		r.courierID = courierID
	}

	return r, nil
}

// Validate ensures the Route instance was properly constructed.
func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

// IsEqual compares two routes by identifier.
func (r *Route) IsEqual(other *Route) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the backend-assigned identifier, zero for unsaved routes.
func (r *Route) ID() kernel.ID {
	return r.id
}

// Courier returns the assigned courier's ID, or nil.
func (r *Route) Courier() *kernel.ID {
	return r.courierID
}

// OrderIDs returns a copy of the optimized order sequence.
func (r *Route) OrderIDs() []kernel.ID {
	out := make([]kernel.ID, len(r.orderIDs))
	copy(out, r.orderIDs)
	return out
}

// Path returns a copy of the human-readable stop sequence, parallel to
// OrderIDs.
func (r *Route) Path() []string {
	out := make([]string, len(r.path))
	copy(out, r.path)
	return out
}

// TotalOrders returns the number of member orders.
func (r *Route) TotalOrders() int {
	return len(r.orderIDs)
}

// TotalDistance returns the aggregate distance in canonical meters.
func (r *Route) TotalDistance() kernel.Distance {
	return r.totalDistance
}

// EstimatedMinutes returns the estimated travel time in minutes.
func (r *Route) EstimatedMinutes() int {
	return r.estimatedMinutes
}

// Status returns the current lifecycle status.
func (r *Route) Status() Status {
	return r.status
}

// CreatedAt returns the backend creation timestamp, or nil for unsaved
// routes.
func (r *Route) CreatedAt() *time.Time {
	return r.createdAt
}

// DeliveryDate returns the planned delivery date, or nil.
func (r *Route) DeliveryDate() *time.Time {
	return r.deliveryDate
}

// Contains reports whether the order is a member of the route.
func (r *Route) Contains(orderID kernel.ID) bool {
	for _, id := range r.orderIDs {
		if id.IsEqual(orderID) {
			return true
		}
	}
	return false
}

// AssignCourier hands the route to a courier: Pending -> InProgress.
// Reassigning an in-progress route to a different courier is allowed.
func (r *Route) AssignCourier(courierID kernel.ID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := r.status.Dispatch()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.courierID = &courierID
	return nil
}

// ScheduleDelivery sets the planned delivery date. Rejected on terminal
// routes.
func (r *Route) ScheduleDelivery(date time.Time) error {
	if r.status.IsTerminal() {
		return ErrRouteIsTerminal
	}
	r.deliveryDate = &date
	return nil
}

// ReplaceMembership swaps the route's membership for a newly optimized
// sequence with fresh estimates. Rejected on terminal routes; the caller is
// responsible for synchronizing member order statuses afterwards.
func (r *Route) ReplaceMembership(
	orderIDs []kernel.ID,
	path []string,
	totalDistance kernel.Distance,
	estimatedMinutes int,
) error {
	if r.status.IsTerminal() {
		return ErrRouteIsTerminal
	}

	if err := errors.Join(
		r.setMembership(orderIDs, path),
		r.setEstimates(totalDistance, estimatedMinutes),
	); err != nil {
		return err
	}

	return nil
}

// Complete marks the route Completed. Rejected without side effects when the
// route is already terminal.
func (r *Route) Complete() error {
	newStatus, err := r.status.Complete()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Cancel marks the route Cancelled. Legal from Pending only.
func (r *Route) Cancel() error {
	newStatus, err := r.status.Cancel()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

func (r *Route) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setMembership(orderIDs []kernel.ID, path []string) error {
	if len(orderIDs) == 0 {
		return errs.NewValueIsRequiredError("optimized_order_ids")
	}
	if len(path) != len(orderIDs) {
		return errs.NewValueIsInvalidErrorWithCause("optimized_path",
			fmt.Errorf("%d stops do not match %d orders", len(path), len(orderIDs)))
	}

	seen := make(map[kernel.ID]struct{}, len(orderIDs))
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, ok := seen[id]; ok {
			return errs.NewValueIsInvalidErrorWithCause("optimized_order_ids",
				fmt.Errorf("order %s appears more than once", id))
		}
		seen[id] = struct{}{}
	}

	r.orderIDs = make([]kernel.ID, len(orderIDs))
	copy(r.orderIDs, orderIDs)
	r.path = make([]string, len(path))
	copy(r.path, path)
	return nil
}

func (r *Route) setEstimates(totalDistance kernel.Distance, estimatedMinutes int) error {
	if totalDistance < 0 {
		return errs.NewValueIsInvalidError("total_distance")
	}
	if estimatedMinutes < 0 {
		return errs.NewValueIsInvalidError("estimated_time_minutes")
	}
	r.totalDistance = totalDistance
	r.estimatedMinutes = estimatedMinutes
	return nil
}

func (r *Route) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}
