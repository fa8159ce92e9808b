package optimizer

import (
	"context"
	"net/http"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

type assignRequest struct {
	OrderIDs  []int64 `json:"order_ids"`
	CourierID *int64  `json:"courier_id"`
	City      string  `json:"city,omitempty"`
}

type assignResponse struct {
	OrdersAssigned int `json:"orders_assigned"`
}

// AssignOrders delegates direct assignment to the optimization backend. The
// backend builds and persists the routes itself; the returned count is how
// many of the submitted orders it managed to place.
func (c *Client) AssignOrders(
	ctx context.Context,
	orderIDs []kernel.ID,
	courierID *kernel.ID,
	city string,
) (int, error) {
	if len(orderIDs) == 0 {
		return 0, errs.NewValueIsRequiredError("order_ids")
	}

	request := assignRequest{OrderIDs: make([]int64, 0, len(orderIDs)), City: city}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return 0, err
		}
		request.OrderIDs = append(request.OrderIDs, id.Int64())
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return 0, err
		}
		raw := courierID.Int64()
		request.CourierID = &raw
	}

	var response assignResponse
	if err := c.send(ctx, http.MethodPost, "/optimize/assign", request, &response); err != nil {
		return 0, err
	}
	return response.OrdersAssigned, nil
}
