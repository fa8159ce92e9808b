package http

import (
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

const deliveryDateLayout = "2006-01-02"

type orderSelectionRequest struct {
	OrderIDs []int64 `json:"order_ids"`
}

type saveRouteRequest struct {
	OrderIDs             []int64  `json:"order_ids"`
	Path                 []string `json:"path"`
	TotalDistanceKm      float64  `json:"total_distance_km"`
	EstimatedTimeMinutes int      `json:"estimated_time_minutes"`
	CourierID            *int64   `json:"courier_id"`
	DeliveryDate         *string  `json:"delivery_date"`
}

type reviseRouteRequest struct {
	OrderIDs             []int64  `json:"order_ids"`
	Path                 []string `json:"path"`
	TotalDistanceKm      float64  `json:"total_distance_km"`
	EstimatedTimeMinutes int      `json:"estimated_time_minutes"`
}

type assignOrdersRequest struct {
	OrderIDs  []int64 `json:"order_ids"`
	CourierID *int64  `json:"courier_id"`
	City      string  `json:"city"`
}

type computationResponse struct {
	OrderIDs             []int64     `json:"order_ids"`
	Path                 []string    `json:"path"`
	TotalDistance        int64       `json:"total_distance"`
	TotalDistanceKm      float64     `json:"total_distance_km"`
	EstimatedTimeMinutes int         `json:"estimated_time_minutes"`
	OrderedPoints        [][]float64 `json:"ordered_points,omitempty"`
	RouteGeometry        [][]float64 `json:"route_geometry,omitempty"`
}

type routeResponse struct {
	ID                   int64    `json:"id"`
	CourierID            *int64   `json:"courier_id"`
	TotalOrders          int      `json:"total_orders"`
	TotalDistance        int64    `json:"total_distance"`
	TotalDistanceKm      float64  `json:"total_distance_km"`
	EstimatedTimeMinutes int      `json:"estimated_time_minutes"`
	OptimizedPath        []string `json:"optimized_path"`
	OptimizedOrderIDs    []int64  `json:"optimized_order_ids"`
	Status               string   `json:"status"`
	DeliveryDate         *string  `json:"delivery_date,omitempty"`
	FailedOrderIDs       []int64  `json:"failed_order_ids"`
}

type assignOrdersResponse struct {
	OrdersAssigned int `json:"orders_assigned"`
}

type suitableCourierResponse struct {
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

type zonedOrderResponse struct {
	OrderID  int64  `json:"id"`
	Address  string `json:"address"`
	ZoneID   *int64 `json:"zone_id"`
	ZoneName string `json:"zone_name"`
}

type orderZonesResponse struct {
	Orders        []zonedOrderResponse `json:"orders"`
	ZonesInvolved map[int64]string     `json:"zones_involved"`
	TotalZones    int                  `json:"total_zones"`
}

type courierStatusResponse struct {
	CourierID      int64   `json:"courier_id"`
	Username       string  `json:"username"`
	VehicleNumber  string  `json:"vehicle_number"`
	RoutesToday    int     `json:"routes_today"`
	EstimatedHours float64 `json:"estimated_hours"`
}

type courierStatisticsResponse struct {
	CourierID            int64   `json:"courier_id"`
	TotalRoutes          int     `json:"total_routes"`
	CompletedRoutes      int     `json:"completed_routes"`
	TotalDistanceKm      float64 `json:"total_distance_km"`
	TotalOrdersDelivered int     `json:"total_orders_delivered"`
}

type orderResponse struct {
	ID                   int64   `json:"id"`
	Address              string  `json:"address"`
	Size                 float64 `json:"size"`
	Weight               float64 `json:"weight"`
	ClientID             *int64  `json:"client_id"`
	Status               string  `json:"status"`
	RouteID              *int64  `json:"route_id"`
	ExpectedDeliveryTime *string `json:"expected_delivery_time"`
}

type courierResponse struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	VehicleNumber string `json:"vehicle_number,omitempty"`
	WorkAreaID    *int64 `json:"work_area_id"`
	WorkAreaName  string `json:"work_area_name,omitempty"`
}

type planningDataResponse struct {
	Orders           []orderResponse   `json:"orders"`
	SelectableOrders []orderResponse   `json:"selectable_orders"`
	Couriers         []courierResponse `json:"couriers"`
}

func parseOrderIDs(raw []int64) ([]kernel.ID, error) {
	if len(raw) == 0 {
		return nil, errs.NewValueIsRequiredError("order_ids")
	}

	ids := make([]kernel.ID, 0, len(raw))
	for _, value := range raw {
		id, err := kernel.NewID(value)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseOptionalID(raw *int64) (*kernel.ID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.NewID(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseDeliveryDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	date, err := time.Parse(deliveryDateLayout, *raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("delivery_date", err)
	}
	return &date, nil
}

func rawIDs(ids []kernel.ID) []int64 {
	raw := make([]int64, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Int64())
	}
	return raw
}

func rawOptionalID(id *kernel.ID) *int64 {
	if id == nil {
		return nil
	}
	value := id.Int64()
	return &value
}

func pointPairs(points []ports.Point) [][]float64 {
	if len(points) == 0 {
		return nil
	}

	pairs := make([][]float64, 0, len(points))
	for _, point := range points {
		pairs = append(pairs, []float64{point.Lat, point.Lng})
	}
	return pairs
}

func computationToResponse(computation *ports.RouteComputation) computationResponse {
	return computationResponse{
		OrderIDs:             rawIDs(computation.OrderIDs),
		Path:                 computation.Stops,
		TotalDistance:        computation.TotalDistance.Meters(),
		TotalDistanceKm:      computation.TotalDistance.Kilometers(),
		EstimatedTimeMinutes: computation.EstimatedMinutes,
		OrderedPoints:        pointPairs(computation.OrderedPoints),
		RouteGeometry:        pointPairs(computation.Geometry),
	}
}

func routeToResponse(aggregate *route.Route, failedOrderIDs []kernel.ID) routeResponse {
	response := routeResponse{
		ID:                   aggregate.ID().Int64(),
		CourierID:            rawOptionalID(aggregate.Courier()),
		TotalOrders:          aggregate.TotalOrders(),
		TotalDistance:        aggregate.TotalDistance().Meters(),
		TotalDistanceKm:      aggregate.TotalDistance().Kilometers(),
		EstimatedTimeMinutes: aggregate.EstimatedMinutes(),
		OptimizedPath:        aggregate.Path(),
		OptimizedOrderIDs:    rawIDs(aggregate.OrderIDs()),
		Status:               aggregate.Status().String(),
		FailedOrderIDs:       rawIDs(failedOrderIDs),
	}

	if date := aggregate.DeliveryDate(); date != nil {
		formatted := date.Format(deliveryDateLayout)
		response.DeliveryDate = &formatted
	}

	return response
}

func suitableCouriersToResponse(couriers []ports.SuitableCourier) []suitableCourierResponse {
	response := make([]suitableCourierResponse, 0, len(couriers))
	for _, candidate := range couriers {
		response = append(response, suitableCourierResponse{
			CourierID:         candidate.CourierID.Int64(),
			Username:          candidate.Username,
			WorkAreaID:        rawOptionalID(candidate.WorkAreaID),
			WorkAreaName:      candidate.WorkAreaName,
			CarID:             candidate.CarID.Int64(),
			CarNumber:         candidate.CarNumber,
			CarSize:           candidate.CarSize,
			CarWeight:         candidate.CarWeight,
			CurrentRoutes:     candidate.CurrentRoutes,
			CurrentHours:      candidate.CurrentHours,
			EstimatedNewHours: candidate.EstimatedNewHours,
			TotalHours:        candidate.TotalHours,
		})
	}
	return response
}

func zoneClassificationToResponse(classification *ports.ZoneClassification) orderZonesResponse {
	orders := make([]zonedOrderResponse, 0, len(classification.Orders))
	for _, zoned := range classification.Orders {
		orders = append(orders, zonedOrderResponse{
			OrderID:  zoned.OrderID.Int64(),
			Address:  zoned.Address,
			ZoneID:   rawOptionalID(zoned.ZoneID),
			ZoneName: zoned.ZoneName,
		})
	}

	zones := make(map[int64]string, len(classification.ZonesInvolved))
	for id, name := range classification.ZonesInvolved {
		zones[id.Int64()] = name
	}

	return orderZonesResponse{
		Orders:        orders,
		ZonesInvolved: zones,
		TotalZones:    classification.TotalZones,
	}
}

func workloadToResponse(workload *ports.CourierWorkload) courierStatusResponse {
	return courierStatusResponse{
		CourierID:      workload.CourierID.Int64(),
		Username:       workload.Username,
		VehicleNumber:  workload.CarNumber,
		RoutesToday:    workload.RoutesToday,
		EstimatedHours: workload.EstimatedHours,
	}
}

func statisticsToResponse(statistics queries.GetCourierStatisticsQueryResponse) courierStatisticsResponse {
	return courierStatisticsResponse{
		CourierID:            statistics.CourierID.Int64(),
		TotalRoutes:          statistics.TotalRoutes,
		CompletedRoutes:      statistics.CompletedRoutes,
		TotalDistanceKm:      statistics.TotalDistanceKm,
		TotalOrdersDelivered: statistics.TotalOrdersDelivered,
	}
}

func orderToResponse(o *order.Order) orderResponse {
	response := orderResponse{
		ID:       o.ID().Int64(),
		Address:  o.Address(),
		Size:     o.Size(),
		Weight:   o.Weight(),
		ClientID: rawOptionalID(o.Client()),
		Status:   o.Status().String(),
		RouteID:  rawOptionalID(o.Route()),
	}

	if expected := o.ExpectedDeliveryTime(); expected != nil {
		formatted := expected.Format(time.RFC3339)
		response.ExpectedDeliveryTime = &formatted
	}

	return response
}

func ordersToResponse(orders []*order.Order) []orderResponse {
	response := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderToResponse(o))
	}
	return response
}

func couriersToResponse(couriers []*courier.Courier) []courierResponse {
	response := make([]courierResponse, 0, len(couriers))
	for _, c := range couriers {
		item := courierResponse{
			ID:           c.ID().Int64(),
			Username:     c.Username(),
			WorkAreaID:   rawOptionalID(c.WorkArea()),
			WorkAreaName: c.WorkAreaName(),
		}
		if vehicle := c.Vehicle(); vehicle != nil {
			item.VehicleNumber = vehicle.Number()
		}
		response = append(response, item)
	}
	return response
}
