// Package http exposes the route assignment workflow over an HTTP API. It
// coordinates between HTTP handlers and application use cases; every
// endpoint binds a request, builds a command or query, and maps the outcome
// back to the wire.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// Server holds the workflow's command and query handlers.
type Server struct {
	// Command handlers
	saveComputedRouteHandler commands.SaveComputedRouteCommandHandler
	reviseRouteHandler       commands.ReviseRouteCommandHandler
	completeRouteHandler     commands.CompleteRouteCommandHandler
	cancelRouteHandler       commands.CancelRouteCommandHandler
	assignOrdersHandler      commands.AssignOrdersCommandHandler

	// Query handlers
	computeCandidateRouteHandler queries.ComputeCandidateRouteQueryHandler
	getSuitableCouriersHandler   queries.GetSuitableCouriersQueryHandler
	getOrderZonesHandler         queries.GetOrderZonesQueryHandler
	getCourierStatusHandler      queries.GetCourierStatusQueryHandler
	getCourierStatisticsHandler  queries.GetCourierStatisticsQueryHandler
	getRoutePlanningDataHandler  queries.GetRoutePlanningDataQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	saveComputedRouteHandler commands.SaveComputedRouteCommandHandler,
	reviseRouteHandler commands.ReviseRouteCommandHandler,
	completeRouteHandler commands.CompleteRouteCommandHandler,
	cancelRouteHandler commands.CancelRouteCommandHandler,
	assignOrdersHandler commands.AssignOrdersCommandHandler,
	computeCandidateRouteHandler queries.ComputeCandidateRouteQueryHandler,
	getSuitableCouriersHandler queries.GetSuitableCouriersQueryHandler,
	getOrderZonesHandler queries.GetOrderZonesQueryHandler,
	getCourierStatusHandler queries.GetCourierStatusQueryHandler,
	getCourierStatisticsHandler queries.GetCourierStatisticsQueryHandler,
	getRoutePlanningDataHandler queries.GetRoutePlanningDataQueryHandler,
) *Server {
	return &Server{
		saveComputedRouteHandler:     saveComputedRouteHandler,
		reviseRouteHandler:           reviseRouteHandler,
		completeRouteHandler:         completeRouteHandler,
		cancelRouteHandler:           cancelRouteHandler,
		assignOrdersHandler:          assignOrdersHandler,
		computeCandidateRouteHandler: computeCandidateRouteHandler,
		getSuitableCouriersHandler:   getSuitableCouriersHandler,
		getOrderZonesHandler:         getOrderZonesHandler,
		getCourierStatusHandler:      getCourierStatusHandler,
		getCourierStatisticsHandler:  getCourierStatisticsHandler,
		getRoutePlanningDataHandler:  getRoutePlanningDataHandler,
	}
}

// RegisterRoutes wires every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/routes/compute", s.ComputeRoute)
	v1.POST("/routes", s.SaveRoute)
	v1.PUT("/routes/:id/orders", s.ReviseRoute)
	v1.POST("/routes/:id/complete", s.CompleteRoute)
	v1.POST("/routes/:id/cancel", s.CancelRoute)
	v1.POST("/orders/assign", s.AssignOrders)
	v1.POST("/orders/zones", s.OrderZones)
	v1.POST("/couriers/suitable", s.SuitableCouriers)
	v1.GET("/couriers/:id/status", s.CourierStatus)
	v1.GET("/couriers/:id/statistics", s.CourierStatistics)
	v1.GET("/planning-data", s.PlanningData)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps workflow errors onto HTTP statuses: unknown objects to
// 404, invalid input to 400, illegal state transitions to 409, backend
// failures to 502.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	var upstream *ports.UpstreamError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, route.ErrRouteIsTerminal):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, queries.ErrNoOrdersSelected):
		status = http.StatusBadRequest
	case errors.As(err, &upstream):
		status = http.StatusBadGateway
	}

	return ctx.JSON(status, errorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
