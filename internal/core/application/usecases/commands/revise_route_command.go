package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrReviseRouteCommandIsNotConstructed = errors.New(
	"ReviseRouteCommand must be created via NewReviseRouteCommand constructor",
)

// ReviseRouteCommand represents a request to replace an existing route's
// membership with a newly computed sequence.
type ReviseRouteCommand struct { //nolint:recvcheck //using for validation
	routeID          kernel.ID
	orderIDs         []kernel.ID
	stops            []string
	totalDistance    kernel.Distance
	estimatedMinutes int

	guard guard.ConstructorGuard
}

// NewReviseRouteCommand creates a command from the route to revise and the
// recomputed optimization result for the new selection.
func NewReviseRouteCommand(
	routeID kernel.ID,
	orderIDs []kernel.ID,
	stops []string,
	totalDistance kernel.Distance,
	estimatedMinutes int,
) (ReviseRouteCommand, error) {
	cmd := ReviseRouteCommand{
		estimatedMinutes: estimatedMinutes,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRouteID(routeID),
		cmd.setMembership(orderIDs, stops),
		cmd.setTotalDistance(totalDistance),
	); err != nil {
		return ReviseRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviseRouteCommand) Validate() error {
	return c.guard.Validate(ErrReviseRouteCommandIsNotConstructed)
}

// RouteID returns the route being revised.
func (c ReviseRouteCommand) RouteID() kernel.ID {
	return c.routeID
}

// OrderIDs returns the new optimized visiting sequence.
func (c ReviseRouteCommand) OrderIDs() []kernel.ID {
	return c.orderIDs
}

// Stops returns the stop addresses parallel to OrderIDs.
func (c ReviseRouteCommand) Stops() []string {
	return c.stops
}

// TotalDistance returns the recomputed aggregate distance.
func (c ReviseRouteCommand) TotalDistance() kernel.Distance {
	return c.totalDistance
}

// EstimatedMinutes returns the recomputed travel time estimate.
func (c ReviseRouteCommand) EstimatedMinutes() int {
	return c.estimatedMinutes
}

func (c *ReviseRouteCommand) setRouteID(routeID kernel.ID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}

func (c *ReviseRouteCommand) setMembership(orderIDs []kernel.ID, stops []string) error {
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

func (c *ReviseRouteCommand) setTotalDistance(totalDistance kernel.Distance) error {
	if totalDistance < 0 {
		return errs.NewValueIsInvalidError("total_distance")
	}

	c.totalDistance = totalDistance
	return nil
}
