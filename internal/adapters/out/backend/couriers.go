package backend

import (
	"context"
	"fmt"
	"net/http"

	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// CourierClient implements ports.CourierClient by joining the backend's
// /users, /cars and /work_areas resources. The backend keeps no courier
// entity of its own; a courier is a user with the courier role plus the car
// registered to them and their work-area assignment.
type CourierClient struct {
	client *Client
}

// NewCourierClient creates the courier domain client.
func NewCourierClient(client *Client) (*CourierClient, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	return &CourierClient{client: client}, nil
}

// List retrieves all users with the courier role, with vehicle and work-area
// reference data attached where available. Couriers without a registered car
// are still returned; capacity checks are the optimization backend's concern.
func (c *CourierClient) List(ctx context.Context) ([]*courier.Courier, error) {
	var users []userDTO
	if err := c.client.send(ctx, http.MethodGet, "/users/", nil, &users); err != nil {
		return nil, err
	}

	var cars []carDTO
	if err := c.client.send(ctx, http.MethodGet, "/cars/", nil, &cars); err != nil {
		return nil, err
	}

	var workAreas []workAreaDTO
	if err := c.client.send(ctx, http.MethodGet, "/work_areas/", nil, &workAreas); err != nil {
		return nil, err
	}

	carsByUser := make(map[int64]carDTO, len(cars))
	for _, car := range cars {
		if car.UserID != nil {
			carsByUser[*car.UserID] = car
		}
	}

	areaNames := make(map[int64]string, len(workAreas))
	for _, area := range workAreas {
		areaNames[area.ID] = area.Name
	}

	couriers := make([]*courier.Courier, 0, len(users))
	for _, user := range users {
		if !courier.IsCourierRole(user.Role) {
			continue
		}

		mapped, err := c.mapCourier(user, carsByUser, areaNames)
		if err != nil {
			return nil, fmt.Errorf("map courier %d: %w", user.ID, err)
		}
		couriers = append(couriers, mapped)
	}
	return couriers, nil
}

func (c *CourierClient) mapCourier(
	user userDTO,
	carsByUser map[int64]carDTO,
	areaNames map[int64]string,
) (*courier.Courier, error) {
	id, err := kernel.NewID(user.ID)
	if err != nil {
		return nil, err
	}

	mapped, err := courier.NewCourier(id, user.Username)
	if err != nil {
		return nil, err
	}

	if car, ok := carsByUser[user.ID]; ok {
		carID, carErr := kernel.NewID(car.ID)
		if carErr != nil {
			return nil, carErr
		}
		vehicle, carErr := courier.NewVehicle(carID, car.VehicleNumber, car.Size, car.Weight)
		if carErr != nil {
			return nil, carErr
		}
		if carErr = mapped.AttachVehicle(vehicle); carErr != nil {
			return nil, carErr
		}
	}

	if user.WorkAreaID != nil && *user.WorkAreaID > 0 {
		areaID, areaErr := kernel.NewID(*user.WorkAreaID)
		if areaErr != nil {
			return nil, areaErr
		}
		if areaErr = mapped.AssignWorkArea(areaID, areaNames[*user.WorkAreaID]); areaErr != nil {
			return nil, areaErr
		}
	}

	return mapped, nil
}
