package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

func pathID(ctx echo.Context, paramName string) (kernel.ID, error) {
	raw, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return kernel.NewID(raw)
}

// ComputeRoute handles POST /api/v1/routes/compute. Nothing is written on
// either backend; the response is a candidate for a subsequent save.
func (s *Server) ComputeRoute(ctx echo.Context) error {
	var request orderSelectionRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	orderIDs, err := parseOrderIDs(request.OrderIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewComputeCandidateRouteQuery(orderIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	computation, err := s.computeCandidateRouteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, computationToResponse(computation))
}

// SaveRoute handles POST /api/v1/routes. The submitted distance is in
// kilometers and is persisted in meters.
func (s *Server) SaveRoute(ctx echo.Context) error {
	var request saveRouteRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	orderIDs, err := parseOrderIDs(request.OrderIDs)
	if err != nil {
		return respondError(ctx, err)
	}
	courierID, err := parseOptionalID(request.CourierID)
	if err != nil {
		return respondError(ctx, err)
	}
	deliveryDate, err := parseDeliveryDate(request.DeliveryDate)
	if err != nil {
		return respondError(ctx, err)
	}
	totalDistance, err := kernel.NewDistanceFromKilometers(request.TotalDistanceKm)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSaveComputedRouteCommand(
		orderIDs,
		request.Path,
		totalDistance,
		request.EstimatedTimeMinutes,
		courierID,
		deliveryDate,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.saveComputedRouteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, routeToResponse(result.Route, result.FailedOrderIDs))
}

// ReviseRoute handles PUT /api/v1/routes/:id/orders.
func (s *Server) ReviseRoute(ctx echo.Context) error {
	routeID, err := pathID(ctx, "route_id")
	if err != nil {
		return respondError(ctx, err)
	}

	var request reviseRouteRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	orderIDs, err := parseOrderIDs(request.OrderIDs)
	if err != nil {
		return respondError(ctx, err)
	}
	totalDistance, err := kernel.NewDistanceFromKilometers(request.TotalDistanceKm)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewReviseRouteCommand(
		routeID,
		orderIDs,
		request.Path,
		totalDistance,
		request.EstimatedTimeMinutes,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.reviseRouteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, routeToResponse(result.Route, result.FailedOrderIDs))
}

// CompleteRoute handles POST /api/v1/routes/:id/complete. Completion is
// irreversible; repeating it yields a conflict without touching any order.
func (s *Server) CompleteRoute(ctx echo.Context) error {
	routeID, err := pathID(ctx, "route_id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCompleteRouteCommand(routeID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.completeRouteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, routeToResponse(result.Route, result.FailedOrderIDs))
}

// CancelRoute handles POST /api/v1/routes/:id/cancel.
func (s *Server) CancelRoute(ctx echo.Context) error {
	routeID, err := pathID(ctx, "route_id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelRouteCommand(routeID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.cancelRouteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, routeToResponse(result.Route, result.FailedOrderIDs))
}
