package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrCompleteRouteCommandIsNotConstructed = errors.New(
	"CompleteRouteCommand must be created via NewCompleteRouteCommand constructor",
)

// CompleteRouteCommand represents a request to finalize a route: mark it
// completed and cascade its member orders to delivered.
type CompleteRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.ID

	guard guard.ConstructorGuard
}

// NewCompleteRouteCommand creates a command for the given route.
func NewCompleteRouteCommand(routeID kernel.ID) (CompleteRouteCommand, error) {
	cmd := CompleteRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRouteID(routeID); err != nil {
		return CompleteRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteRouteCommand) Validate() error {
	return c.guard.Validate(ErrCompleteRouteCommandIsNotConstructed)
}

// RouteID returns the route being completed.
func (c CompleteRouteCommand) RouteID() kernel.ID {
	return c.routeID
}

func (c *CompleteRouteCommand) setRouteID(routeID kernel.ID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}
