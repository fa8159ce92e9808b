package optimizer

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

type orderIDsRequest struct {
	OrderIDs []int64 `json:"order_ids"`
}

func newOrderIDsRequest(orderIDs []kernel.ID) (orderIDsRequest, error) {
	if len(orderIDs) == 0 {
		return orderIDsRequest{}, errs.NewValueIsRequiredError("order_ids")
	}

	request := orderIDsRequest{OrderIDs: make([]int64, 0, len(orderIDs))}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return orderIDsRequest{}, err
		}
		request.OrderIDs = append(request.OrderIDs, id.Int64())
	}
	return request, nil
}

type suitableCourierDTO struct {
	CourierID         int64   `json:"courier_id"`
	Username          string  `json:"username"`
	WorkAreaID        *int64  `json:"work_area_id"`
	WorkAreaName      string  `json:"work_area_name"`
	CarID             int64   `json:"car_id"`
	CarNumber         string  `json:"car_number"`
	CarSize           float64 `json:"car_size"`
	CarWeight         float64 `json:"car_weight"`
	CurrentRoutes     int     `json:"current_routes"`
	CurrentHours      float64 `json:"current_hours"`
	EstimatedNewHours float64 `json:"estimated_new_hours"`
	TotalHours        float64 `json:"total_hours"`
}

type suitableCouriersResponse struct {
	SuitableCouriers []suitableCourierDTO `json:"suitable_couriers"`
}

// SuitableCouriers asks the backend which couriers can take on the given
// selection. The list is advisory only: callers surface it as a ranking, not
// a filter.
func (c *Client) SuitableCouriers(ctx context.Context, orderIDs []kernel.ID) ([]ports.SuitableCourier, error) {
	request, err := newOrderIDsRequest(orderIDs)
	if err != nil {
		return nil, err
	}

	var response suitableCouriersResponse
	if err := c.send(ctx, http.MethodPost, "/couriers/suitable-for-orders", request, &response); err != nil {
		return nil, err
	}

	couriers := make([]ports.SuitableCourier, 0, len(response.SuitableCouriers))
	for _, dto := range response.SuitableCouriers {
		courierID, idErr := kernel.NewID(dto.CourierID)
		if idErr != nil {
			return nil, malformed(http.StatusOK,
				fmt.Sprintf("suitable courier carries invalid identifier %d", dto.CourierID))
		}
		carID, idErr := kernel.NewID(dto.CarID)
		if idErr != nil {
			return nil, malformed(http.StatusOK,
				fmt.Sprintf("suitable courier %d carries invalid car identifier %d", dto.CourierID, dto.CarID))
		}

		var workAreaID *kernel.ID
		if dto.WorkAreaID != nil && *dto.WorkAreaID > 0 {
			areaID, areaErr := kernel.NewID(*dto.WorkAreaID)
			if areaErr != nil {
				return nil, areaErr
			}
			workAreaID = &areaID
		}

		couriers = append(couriers, ports.SuitableCourier{
			CourierID:         courierID,
			Username:          dto.Username,
			WorkAreaID:        workAreaID,
			WorkAreaName:      dto.WorkAreaName,
			CarID:             carID,
			CarNumber:         dto.CarNumber,
			CarSize:           dto.CarSize,
			CarWeight:         dto.CarWeight,
			CurrentRoutes:     dto.CurrentRoutes,
			CurrentHours:      dto.CurrentHours,
			EstimatedNewHours: dto.EstimatedNewHours,
			TotalHours:        dto.TotalHours,
		})
	}
	return couriers, nil
}

type courierStatusResponse struct {
	CourierID int64  `json:"courier_id"`
	Username  string `json:"username"`
	Car       *struct {
		VehicleNumber string `json:"vehicle_number"`
	} `json:"car"`
	RoutesToday    int     `json:"routes_today"`
	EstimatedHours float64 `json:"estimated_hours"`
}

// CourierStatus reports a courier's current workload.
func (c *Client) CourierStatus(ctx context.Context, courierID kernel.ID) (*ports.CourierWorkload, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	var response courierStatusResponse
	path := fmt.Sprintf("/couriers/%d/status", courierID.Int64())
	if err := c.send(ctx, http.MethodGet, path, nil, &response); err != nil {
		var upstream *ports.UpstreamError
		if errors.As(err, &upstream) && upstream.Status == http.StatusNotFound {
			return nil, errs.NewObjectNotFoundErrorWithCause("courier_id", courierID.Int64(), err)
		}
		return nil, err
	}

	workload := &ports.CourierWorkload{
		CourierID:      courierID,
		Username:       response.Username,
		RoutesToday:    response.RoutesToday,
		EstimatedHours: response.EstimatedHours,
	}
	if response.Car != nil {
		workload.CarNumber = response.Car.VehicleNumber
	}
	return workload, nil
}
