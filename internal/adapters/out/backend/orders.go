package backend

import (
	"context"
	"fmt"
	"net/http"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
)

// OrderClient implements ports.OrderClient against the backend's /orders
// resource.
type OrderClient struct {
	client *Client
}

// NewOrderClient creates the order domain client.
func NewOrderClient(client *Client) (*OrderClient, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	return &OrderClient{client: client}, nil
}

// List retrieves all orders.
func (c *OrderClient) List(ctx context.Context) ([]*order.Order, error) {
	var dtos []orderDTO
	if err := c.client.send(ctx, http.MethodGet, "/orders/", nil, &dtos); err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := orderFromDTO(dto)
		if err != nil {
			return nil, fmt.Errorf("map order %d: %w", dto.ID, err)
		}
		orders = append(orders, aggregate)
	}
	return orders, nil
}

// Get retrieves a single order by identifier.
func (c *OrderClient) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto orderDTO
	err := c.client.send(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id.Int64()), nil, &dto)
	if err != nil {
		if isNotFound(err) {
			return nil, errs.NewObjectNotFoundErrorWithCause("order_id", id.Int64(), err)
		}
		return nil, err
	}

	return orderFromDTO(dto)
}

// Update persists the full order representation.
func (c *OrderClient) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := orderToDTO(aggregate)
	path := fmt.Sprintf("/orders/%d", dto.ID)
	if err := c.client.send(ctx, http.MethodPut, path, dto, nil); err != nil {
		if isNotFound(err) {
			return errs.NewObjectNotFoundErrorWithCause("order_id", dto.ID, err)
		}
		return err
	}
	return nil
}
