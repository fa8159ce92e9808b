package order

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderAlreadyRouted is returned when an order that already belongs to
	// one route is claimed for another. An order belongs to at most one
	// active route at a time.
	ErrOrderAlreadyRouted = errors.New("order already belongs to an active route")
)

// Order represents a single delivery request.
//
// Invariants:
//   - Must have a valid identifier and a non-empty delivery address
//   - Size and weight must be positive
//   - Belongs to at most one active route; routeID is set exactly while the
//     status is InProgress
//   - Status transitions follow the Status state machine
type Order struct {
	id                   kernel.ID
	size                 float64
	weight               float64
	address              string
	clientID             *kernel.ID
	routeID              *kernel.ID
	status               Status
	expectedDeliveryTime *time.Time

	isConstructed bool
}

// NewOrder creates an unassigned order in Ready status.
func NewOrder(id kernel.ID, address string, size, weight float64) (*Order, error) {
	o := &Order{
		status:        Ready,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setAddress(address),
		o.setDimensions(size, weight),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from its backend representation,
// including its current status and route membership. Used by the domain
// client when mapping responses; validates the same invariants as NewOrder
// plus status/route consistency.
func RestoreOrder(
	id kernel.ID,
	address string,
	size, weight float64,
	clientID *kernel.ID,
	routeID *kernel.ID,
	status Status,
	expectedDeliveryTime *time.Time,
) (*Order, error) {
	o := &Order{
		clientID:             clientID,
		expectedDeliveryTime: expectedDeliveryTime,
		isConstructed:        true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setAddress(address),
		o.setDimensions(size, weight),
		o.setStatus(status, routeID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.ID {
	return o.id
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// Size returns the order's size.
func (o *Order) Size() float64 {
	return o.size
}

// Weight returns the order's weight.
func (o *Order) Weight() float64 {
	return o.weight
}

// Client returns the referenced client's ID, or nil.
func (o *Order) Client() *kernel.ID {
	return o.clientID
}

// Route returns the active route's ID, or nil when unassigned.
func (o *Order) Route() *kernel.ID {
	return o.routeID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// ExpectedDeliveryTime returns the expected delivery timestamp, or nil.
func (o *Order) ExpectedDeliveryTime() *time.Time {
	return o.expectedDeliveryTime
}

// JoinRoute claims the order for the given route: Ready -> InProgress.
// Returns ErrOrderAlreadyRouted if the order is already a member of a
// different route; joining the route it already belongs to is a no-op, which
// keeps membership cascades safe to re-run.
func (o *Order) JoinRoute(routeID kernel.ID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	if o.routeID != nil {
		if o.routeID.IsEqual(routeID) && o.status == InProgress {
			return nil
		}
		return ErrOrderAlreadyRouted
	}

	newStatus, err := o.status.Claim()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.routeID = &routeID
	return nil
}

// LeaveRoute releases the order from its route: InProgress -> Ready.
// Releasing an order that is already Ready is a no-op.
func (o *Order) LeaveRoute() error {
	if o.status == Ready && o.routeID == nil {
		return nil
	}

	newStatus, err := o.status.Release()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.routeID = nil
	return nil
}

// MarkDelivered finalizes the order when its route completes:
// InProgress -> Delivered. Marking an already delivered order again is a
// no-op so the completion cascade stays idempotent.
func (o *Order) MarkDelivered() error {
	if o.status == Delivered {
		return nil
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setDimensions(size, weight float64) error {
	if size <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("size is invalid",
			fmt.Errorf("%v is not greater than 0", size))
	}
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid",
			fmt.Errorf("%v is not greater than 0", weight))
	}
	o.size = size
	o.weight = weight
	return nil
}

func (o *Order) setStatus(status Status, routeID *kernel.ID) error {
	if err := status.Validate(); err != nil {
		return err
	}

	// An order is on a route exactly while it is in progress.
	if status == InProgress && routeID == nil {
		return errs.NewValueIsInvalidErrorWithCause("route_id is invalid",
			errors.New("in_progress order must reference a route"))
	}
	if status == Ready && routeID != nil {
		return errs.NewValueIsInvalidErrorWithCause("route_id is invalid",
			errors.New("ready order must not reference a route"))
	}

	if routeID != nil {
		if err := routeID.Validate(); err != nil {
			return err
		}
	}

	o.status = status
	o.routeID = routeID
	return nil
}
