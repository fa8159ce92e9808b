package optimizer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

type computeRequest struct {
	Orders []computeOrder `json:"orders"`
}

type computeOrder struct {
	ID      int64  `json:"id"`
	Address string `json:"address"`
}

// computeResponse mirrors the backend's loose compute contract. The sequence
// arrives under optimal_order or order, the distance under total_distance_km
// or distance_km, and sequence items are either raw identifiers or geocoded
// {id, lat, lng} objects.
type computeResponse struct {
	OptimalOrder         []json.RawMessage `json:"optimal_order"`
	Order                []json.RawMessage `json:"order"`
	TotalDistanceKm      *float64          `json:"total_distance_km"`
	DistanceKm           *float64          `json:"distance_km"`
	EstimatedTimeMinutes int               `json:"estimated_time_minutes"`
	RouteGeometry        [][]float64       `json:"route_geometry"`
	OrderedPoints        [][]float64       `json:"ordered_points"`
	Coordinates          [][]float64       `json:"coordinates"`
}

// sequenceItem is one entry of the optimized sequence after shape detection.
type sequenceItem struct {
	id    int64
	point *ports.Point
}

// ComputeRoute submits the order selection and normalizes the backend's
// response. The returned sequence is verified to be a permutation of the
// submitted order identifiers; anything else is a contract violation and
// surfaces as an upstream error.
func (c *Client) ComputeRoute(ctx context.Context, stops []ports.OrderStop) (*ports.RouteComputation, error) {
	if len(stops) == 0 {
		return nil, errs.NewValueIsRequiredError("orders")
	}

	addressByID := make(map[kernel.ID]string, len(stops))
	request := computeRequest{Orders: make([]computeOrder, 0, len(stops))}
	for _, stop := range stops {
		if err := stop.ID.Validate(); err != nil {
			return nil, err
		}
		if stop.Address == "" {
			return nil, errs.NewValueIsRequiredError("address")
		}
		if _, ok := addressByID[stop.ID]; ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("orders",
				fmt.Errorf("order %s is selected more than once", stop.ID))
		}
		addressByID[stop.ID] = stop.Address
		request.Orders = append(request.Orders, computeOrder{ID: stop.ID.Int64(), Address: stop.Address})
	}

	var response computeResponse
	if err := c.send(ctx, http.MethodPost, "/optimize/compute", request, &response); err != nil {
		return nil, err
	}

	return normalizeComputation(response, addressByID)
}

func normalizeComputation(
	response computeResponse,
	addressByID map[kernel.ID]string,
) (*ports.RouteComputation, error) {
	rawSequence := response.OptimalOrder
	if rawSequence == nil {
		rawSequence = response.Order
	}
	if len(rawSequence) == 0 {
		return nil, malformed(http.StatusOK, "response carries no order sequence")
	}

	items := make([]sequenceItem, 0, len(rawSequence))
	for _, raw := range rawSequence {
		item, err := decodeSequenceItem(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	orderIDs, stops, err := reconcileSequence(items, addressByID)
	if err != nil {
		return nil, err
	}

	distance, err := normalizeDistance(response)
	if err != nil {
		return nil, err
	}

	return &ports.RouteComputation{
		OrderIDs:         orderIDs,
		Stops:            stops,
		TotalDistance:    distance,
		EstimatedMinutes: response.EstimatedTimeMinutes,
		OrderedPoints:    normalizePoints(response, items),
		Geometry:         toPoints(response.RouteGeometry),
	}, nil
}

func decodeSequenceItem(raw json.RawMessage) (sequenceItem, error) {
	var id int64
	if err := json.Unmarshal(raw, &id); err == nil {
		return sequenceItem{id: id}, nil
	}

	var object struct {
		ID  int64   `json:"id"`
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}
	if err := json.Unmarshal(raw, &object); err != nil {
		return sequenceItem{}, malformed(http.StatusOK,
			fmt.Sprintf("sequence item %s is neither an identifier nor a point object", raw))
	}
	return sequenceItem{
		id:    object.ID,
		point: &ports.Point{Lat: object.Lat, Lng: object.Lng},
	}, nil
}

// reconcileSequence verifies that the returned sequence is a permutation of
// the submitted selection and pairs every identifier with its submitted
// address.
func reconcileSequence(
	items []sequenceItem,
	addressByID map[kernel.ID]string,
) ([]kernel.ID, []string, error) {
	if len(items) != len(addressByID) {
		return nil, nil, malformed(http.StatusOK, fmt.Sprintf(
			"sequence has %d entries for %d submitted orders", len(items), len(addressByID)))
	}

	orderIDs := make([]kernel.ID, 0, len(items))
	stops := make([]string, 0, len(items))
	seen := make(map[kernel.ID]struct{}, len(items))
	for _, item := range items {
		id, err := kernel.NewID(item.id)
		if err != nil {
			return nil, nil, malformed(http.StatusOK,
				fmt.Sprintf("sequence carries invalid identifier %d", item.id))
		}
		if _, ok := seen[id]; ok {
			return nil, nil, malformed(http.StatusOK,
				fmt.Sprintf("sequence repeats order %s", id))
		}
		address, ok := addressByID[id]
		if !ok {
			return nil, nil, malformed(http.StatusOK,
				fmt.Sprintf("sequence carries order %s that was not submitted", id))
		}

		seen[id] = struct{}{}
		orderIDs = append(orderIDs, id)
		stops = append(stops, address)
	}
	return orderIDs, stops, nil
}

// normalizeDistance picks whichever kilometer field the backend populated
// and converts it to canonical meters.
func normalizeDistance(response computeResponse) (kernel.Distance, error) {
	km := 0.0
	switch {
	case response.TotalDistanceKm != nil:
		km = *response.TotalDistanceKm
	case response.DistanceKm != nil:
		km = *response.DistanceKm
	}

	distance, err := kernel.NewDistanceFromKilometers(km)
	if err != nil {
		return 0, malformed(http.StatusOK, fmt.Sprintf("distance %v km is invalid", km))
	}
	return distance, nil
}

// normalizePoints picks the stop coordinates from whichever field the
// backend populated: ordered_points, coordinates, or the lat/lng carried on
// object-shaped sequence items.
func normalizePoints(response computeResponse, items []sequenceItem) []ports.Point {
	if points := toPoints(response.OrderedPoints); points != nil {
		return points
	}
	if points := toPoints(response.Coordinates); points != nil {
		return points
	}

	points := make([]ports.Point, 0, len(items))
	for _, item := range items {
		if item.point == nil {
			return nil
		}
		points = append(points, *item.point)
	}
	return points
}

// toPoints converts the backend's [lat, lng] pair lists, dropping anything
// that is not a pair.
func toPoints(pairs [][]float64) []ports.Point {
	if len(pairs) == 0 {
		return nil
	}

	points := make([]ports.Point, 0, len(pairs))
	for _, pair := range pairs {
		if len(pair) != 2 {
			return nil
		}
		points = append(points, ports.Point{Lat: pair[0], Lng: pair[1]})
	}
	return points
}
