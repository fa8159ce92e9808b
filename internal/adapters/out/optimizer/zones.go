package optimizer

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
)

type zonedOrderDTO struct {
	ID       int64  `json:"id"`
	Address  string `json:"address"`
	ZoneID   *int64 `json:"zone_id"`
	ZoneName string `json:"zone_name"`
}

type orderZonesResponse struct {
	Orders        []zonedOrderDTO   `json:"orders"`
	ZonesInvolved map[string]string `json:"zones_involved"`
	TotalZones    int               `json:"total_zones"`
}

// OrderZones classifies a selection of orders by delivery zone. Orders whose
// address could not be matched to any zone come back with a nil ZoneID.
func (c *Client) OrderZones(ctx context.Context, orderIDs []kernel.ID) (*ports.ZoneClassification, error) {
	request, err := newOrderIDsRequest(orderIDs)
	if err != nil {
		return nil, err
	}

	var response orderZonesResponse
	if err := c.send(ctx, http.MethodPost, "/optimize/order-zones", request, &response); err != nil {
		return nil, err
	}

	orders := make([]ports.ZonedOrder, 0, len(response.Orders))
	for _, dto := range response.Orders {
		orderID, idErr := kernel.NewID(dto.ID)
		if idErr != nil {
			return nil, malformed(http.StatusOK,
				fmt.Sprintf("zoned order carries invalid identifier %d", dto.ID))
		}

		var zoneID *kernel.ID
		if dto.ZoneID != nil && *dto.ZoneID > 0 {
			id, zoneErr := kernel.NewID(*dto.ZoneID)
			if zoneErr != nil {
				return nil, zoneErr
			}
			zoneID = &id
		}

		orders = append(orders, ports.ZonedOrder{
			OrderID:  orderID,
			Address:  dto.Address,
			ZoneID:   zoneID,
			ZoneName: dto.ZoneName,
		})
	}

	// JSON object keys are strings even though zone identifiers are numeric.
	zones := make(map[kernel.ID]string, len(response.ZonesInvolved))
	for key, name := range response.ZonesInvolved {
		raw, parseErr := strconv.ParseInt(key, 10, 64)
		if parseErr != nil {
			return nil, malformed(http.StatusOK,
				fmt.Sprintf("zones_involved key %q is not an identifier", key))
		}
		zoneID, idErr := kernel.NewID(raw)
		if idErr != nil {
			return nil, idErr
		}
		zones[zoneID] = name
	}

	return &ports.ZoneClassification{
		Orders:        orders,
		ZonesInvolved: zones,
		TotalZones:    response.TotalZones,
	}, nil
}
