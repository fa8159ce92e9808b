package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrAssignOrdersCommandIsNotConstructed = errors.New(
	"AssignOrdersCommand must be created via NewAssignOrdersCommand constructor",
)

// AssignOrdersCommand represents a request to hand a selection of orders to
// the optimization backend for direct assignment. The backend builds and
// persists the routes itself; the workflow only relays the selection.
//
// Example:
//
//	cmd, err := NewAssignOrdersCommand(selection, &courierID, "Rīga")
//	if err != nil {
//	    return fmt.Errorf("invalid selection: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("assignment failed: %w", err)
//	}
//	fmt.Printf("%d orders assigned", result.OrdersAssigned)
type AssignOrdersCommand struct { //nolint:recvcheck //using for validation
	orderIDs  []kernel.ID
	courierID *kernel.ID
	city      string

	guard guard.ConstructorGuard
}

// NewAssignOrdersCommand creates a command for the given selection.
// courierID narrows the backend's courier choice when set; city scopes the
// assignment geographically. Both are optional.
func NewAssignOrdersCommand(
	orderIDs []kernel.ID,
	courierID *kernel.ID,
	city string,
) (AssignOrdersCommand, error) {
	cmd := AssignOrdersCommand{
		city:  city,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderIDs(orderIDs),
		cmd.setCourierID(courierID),
	); err != nil {
		return AssignOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrdersCommandIsNotConstructed)
}

// OrderIDs returns the selected orders.
func (c AssignOrdersCommand) OrderIDs() []kernel.ID {
	return c.orderIDs
}

// CourierID returns the preferred courier, or nil.
func (c AssignOrdersCommand) CourierID() *kernel.ID {
	return c.courierID
}

// City returns the geographic scope, empty for none.
func (c AssignOrdersCommand) City() string {
	return c.city
}

func (c *AssignOrdersCommand) setOrderIDs(orderIDs []kernel.ID) error {
	if len(orderIDs) == 0 {
		return errs.NewValueIsRequiredError("order_ids")
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.orderIDs = orderIDs
	return nil
}

func (c *AssignOrdersCommand) setCourierID(courierID *kernel.ID) error {
	if courierID == nil {
		return nil
	}
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
