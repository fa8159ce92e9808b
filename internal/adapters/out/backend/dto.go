package backend

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"
)

// timeLayouts lists the timestamp formats the backend emits. Date columns
// come back bare, timestamp columns as RFC 3339 or space-separated.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTime(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, *value); err == nil {
			return &t
		}
	}
	return nil
}

func formatTime(value *time.Time) *string {
	if value == nil {
		return nil
	}
	s := value.Format(time.RFC3339)
	return &s
}

func optionalID(raw *int64) (*kernel.ID, error) {
	if raw == nil || *raw == 0 {
		return nil, nil
	}
	id, err := kernel.NewID(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func optionalInt64(id *kernel.ID) *int64 {
	if id == nil {
		return nil
	}
	raw := id.Int64()
	return &raw
}

type orderDTO struct {
	ID                   int64   `json:"id"`
	Size                 float64 `json:"size"`
	Weight               float64 `json:"weight"`
	ClientID             *int64  `json:"client_id"`
	Address              string  `json:"address"`
	ExpectedDeliveryTime *string `json:"expected_delivery_time"`
	RouteStatus          string  `json:"route_status"`
	RouteID              *int64  `json:"route_id"`
}

func orderFromDTO(dto orderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.RouteStatus)
	if err != nil {
		return nil, err
	}

	clientID, err := optionalID(dto.ClientID)
	if err != nil {
		return nil, err
	}
	routeID, err := optionalID(dto.RouteID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.Address,
		dto.Size,
		dto.Weight,
		clientID,
		routeID,
		status,
		parseTime(dto.ExpectedDeliveryTime),
	)
}

// orderToDTO maps the aggregate to the full wire representation the
// backend's PUT contract expects.
func orderToDTO(aggregate *order.Order) orderDTO {
	return orderDTO{
		ID:                   aggregate.ID().Int64(),
		Size:                 aggregate.Size(),
		Weight:               aggregate.Weight(),
		ClientID:             optionalInt64(aggregate.Client()),
		Address:              aggregate.Address(),
		ExpectedDeliveryTime: formatTime(aggregate.ExpectedDeliveryTime()),
		RouteStatus:          aggregate.Status().String(),
		RouteID:              optionalInt64(aggregate.Route()),
	}
}

type routeDTO struct {
	ID                   int64    `json:"id,omitempty"`
	CourierID            *int64   `json:"courier_id"`
	TotalOrders          int      `json:"total_orders"`
	TotalDistance        int64    `json:"total_distance"`
	EstimatedTimeMinutes int      `json:"estimated_time_minutes"`
	OptimizedPath        []string `json:"optimized_path"`
	OptimizedOrderIDs    []int64  `json:"optimized_order_ids"`
	Status               string   `json:"status"`
	CreatedAt            *string  `json:"created_at,omitempty"`
	DeliveryDate         *string  `json:"delivery_date,omitempty"`
}

func routeFromDTO(dto routeDTO) (*route.Route, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	courierID, err := optionalID(dto.CourierID)
	if err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.ID, 0, len(dto.OptimizedOrderIDs))
	for _, raw := range dto.OptimizedOrderIDs {
		orderID, idErr := kernel.NewID(raw)
		if idErr != nil {
			return nil, idErr
		}
		orderIDs = append(orderIDs, orderID)
	}

	distance, err := kernel.NewDistanceFromMeters(dto.TotalDistance)
	if err != nil {
		return nil, err
	}

	status, err := route.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return route.RestoreRoute(
		id,
		courierID,
		orderIDs,
		dto.OptimizedPath,
		distance,
		dto.EstimatedTimeMinutes,
		status,
		parseTime(dto.CreatedAt),
		parseTime(dto.DeliveryDate),
	)
}

func routeToDTO(aggregate *route.Route) routeDTO {
	orderIDs := aggregate.OrderIDs()
	rawIDs := make([]int64, 0, len(orderIDs))
	for _, id := range orderIDs {
		rawIDs = append(rawIDs, id.Int64())
	}

	return routeDTO{
		ID:                   aggregate.ID().Int64(),
		CourierID:            optionalInt64(aggregate.Courier()),
		TotalOrders:          aggregate.TotalOrders(),
		TotalDistance:        aggregate.TotalDistance().Meters(),
		EstimatedTimeMinutes: aggregate.EstimatedMinutes(),
		OptimizedPath:        aggregate.Path(),
		OptimizedOrderIDs:    rawIDs,
		Status:               aggregate.Status().String(),
		CreatedAt:            formatTime(aggregate.CreatedAt()),
		DeliveryDate:         formatTime(aggregate.DeliveryDate()),
	}
}

type userDTO struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	WorkAreaID *int64 `json:"work_area_id"`
}

type carDTO struct {
	ID            int64   `json:"id"`
	Size          float64 `json:"size"`
	Weight        float64 `json:"weight"`
	VehicleNumber string  `json:"vehicle_number"`
	UserID        *int64  `json:"user_id"`
}

type workAreaDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
