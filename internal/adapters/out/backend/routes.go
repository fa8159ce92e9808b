package backend

import (
	"context"
	"fmt"
	"net/http"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"
)

// RouteClient implements ports.RouteClient against the backend's /routes
// resource.
type RouteClient struct {
	client *Client
}

// NewRouteClient creates the route domain client.
func NewRouteClient(client *Client) (*RouteClient, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	return &RouteClient{client: client}, nil
}

// List retrieves all routes.
func (c *RouteClient) List(ctx context.Context) ([]*route.Route, error) {
	var dtos []routeDTO
	if err := c.client.send(ctx, http.MethodGet, "/routes/", nil, &dtos); err != nil {
		return nil, err
	}

	routes := make([]*route.Route, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := routeFromDTO(dto)
		if err != nil {
			return nil, fmt.Errorf("map route %d: %w", dto.ID, err)
		}
		routes = append(routes, aggregate)
	}
	return routes, nil
}

// Get retrieves a single route by identifier.
func (c *RouteClient) Get(ctx context.Context, id kernel.ID) (*route.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto routeDTO
	err := c.client.send(ctx, http.MethodGet, fmt.Sprintf("/routes/%d", id.Int64()), nil, &dto)
	if err != nil {
		if isNotFound(err) {
			return nil, errs.NewObjectNotFoundErrorWithCause("route_id", id.Int64(), err)
		}
		return nil, err
	}

	return routeFromDTO(dto)
}

// Create persists a new route and returns the stored aggregate with its
// backend-assigned identifier.
func (c *RouteClient) Create(ctx context.Context, aggregate *route.Route) (*route.Route, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	var stored routeDTO
	if err := c.client.send(ctx, http.MethodPost, "/routes/", routeToDTO(aggregate), &stored); err != nil {
		return nil, err
	}

	return routeFromDTO(stored)
}

// Update persists changes to an existing route.
func (c *RouteClient) Update(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := routeToDTO(aggregate)
	path := fmt.Sprintf("/routes/%d", dto.ID)
	if err := c.client.send(ctx, http.MethodPut, path, dto, nil); err != nil {
		if isNotFound(err) {
			return errs.NewObjectNotFoundErrorWithCause("route_id", dto.ID, err)
		}
		return err
	}
	return nil
}
