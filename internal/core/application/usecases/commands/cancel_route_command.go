package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrCancelRouteCommandIsNotConstructed = errors.New(
	"CancelRouteCommand must be created via NewCancelRouteCommand constructor",
)

// CancelRouteCommand represents a request to cancel a pending route and
// release its member orders back into the selectable pool.
type CancelRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.ID

	guard guard.ConstructorGuard
}

// NewCancelRouteCommand creates a command for the given route.
func NewCancelRouteCommand(routeID kernel.ID) (CancelRouteCommand, error) {
	cmd := CancelRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRouteID(routeID); err != nil {
		return CancelRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelRouteCommand) Validate() error {
	return c.guard.Validate(ErrCancelRouteCommandIsNotConstructed)
}

// RouteID returns the route being cancelled.
func (c CancelRouteCommand) RouteID() kernel.ID {
	return c.routeID
}

func (c *CancelRouteCommand) setRouteID(routeID kernel.ID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}
