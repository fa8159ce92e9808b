package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrSaveComputedRouteCommandIsNotConstructed = errors.New(
		"SaveComputedRouteCommand must be created via NewSaveComputedRouteCommand constructor",
	)
)

// SaveComputedRouteCommand represents a request to persist a computed route
// candidate and claim its member orders.
//
// Example:
//
//	cmd, err := NewSaveComputedRouteCommand(
//	    computation.OrderIDs, computation.Stops,
//	    computation.TotalDistance, computation.EstimatedMinutes,
//	    &courierID, nil,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid route data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to save route: %w", err)
//	}
//	fmt.Printf("Route %s saved, %d orders failed", result.Route.ID(), len(result.FailedOrderIDs))
type SaveComputedRouteCommand struct { //nolint:recvcheck //using for validation
	orderIDs         []kernel.ID
	stops            []string
	totalDistance    kernel.Distance
	estimatedMinutes int
	courierID        *kernel.ID
	deliveryDate     *time.Time

	guard guard.ConstructorGuard
}

// NewSaveComputedRouteCommand creates a command from a normalized
// optimization result. courierID and deliveryDate are optional; a route
// saved with a courier starts out handed over instead of pending.
func NewSaveComputedRouteCommand(
	orderIDs []kernel.ID,
	stops []string,
	totalDistance kernel.Distance,
	estimatedMinutes int,
	courierID *kernel.ID,
	deliveryDate *time.Time,
) (SaveComputedRouteCommand, error) {
	cmd := SaveComputedRouteCommand{
		estimatedMinutes: estimatedMinutes,
		deliveryDate:     deliveryDate,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMembership(orderIDs, stops),
		cmd.setTotalDistance(totalDistance),
		cmd.setCourierID(courierID),
	); err != nil {
		return SaveComputedRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveComputedRouteCommand) Validate() error {
	return c.guard.Validate(ErrSaveComputedRouteCommandIsNotConstructed)
}

// OrderIDs returns the optimized visiting sequence.
func (c SaveComputedRouteCommand) OrderIDs() []kernel.ID {
	return c.orderIDs
}

// Stops returns the stop addresses parallel to OrderIDs.
func (c SaveComputedRouteCommand) Stops() []string {
	return c.stops
}

// TotalDistance returns the aggregate travel distance.
func (c SaveComputedRouteCommand) TotalDistance() kernel.Distance {
	return c.totalDistance
}

// EstimatedMinutes returns the estimated travel time.
func (c SaveComputedRouteCommand) EstimatedMinutes() int {
	return c.estimatedMinutes
}

// CourierID returns the courier to hand the route to, or nil.
func (c SaveComputedRouteCommand) CourierID() *kernel.ID {
	return c.courierID
}

// DeliveryDate returns the planned delivery date, or nil.
func (c SaveComputedRouteCommand) DeliveryDate() *time.Time {
	return c.deliveryDate
}

func (c *SaveComputedRouteCommand) setMembership(orderIDs []kernel.ID, stops []string) error {
	if len(orderIDs) == 0 {
		return errs.NewValueIsRequiredError("order_ids")
	}
	if len(stops) != len(orderIDs) {
		return errs.NewValueIsInvalidError("stops")
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.orderIDs = orderIDs
	c.stops = stops
	return nil
}

func (c *SaveComputedRouteCommand) setTotalDistance(totalDistance kernel.Distance) error {
	if totalDistance < 0 {
		return errs.NewValueIsInvalidError("total_distance")
	}

	c.totalDistance = totalDistance
	return nil
}

func (c *SaveComputedRouteCommand) setCourierID(courierID *kernel.ID) error {
	if courierID == nil {
		return nil
	}
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
