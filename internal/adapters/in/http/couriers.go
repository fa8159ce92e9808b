package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
)

// AssignOrders handles POST /api/v1/orders/assign. The optimization backend
// picks the courier when none is named in the request.
func (s *Server) AssignOrders(ctx echo.Context) error {
	var request assignOrdersRequest
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

	cmd, err := commands.NewAssignOrdersCommand(orderIDs, courierID, request.City)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.assignOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, assignOrdersResponse{
		OrdersAssigned: result.OrdersAssigned,
	})
}

// SuitableCouriers handles POST /api/v1/couriers/suitable.
func (s *Server) SuitableCouriers(ctx echo.Context) error {
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

	query, err := queries.NewGetSuitableCouriersQuery(orderIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	couriers, err := s.getSuitableCouriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, suitableCouriersToResponse(couriers))
}

// OrderZones handles POST /api/v1/orders/zones.
func (s *Server) OrderZones(ctx echo.Context) error {
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

	query, err := queries.NewGetOrderZonesQuery(orderIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	classification, err := s.getOrderZonesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, zoneClassificationToResponse(classification))
}

// CourierStatus handles GET /api/v1/couriers/:id/status.
func (s *Server) CourierStatus(ctx echo.Context) error {
	courierID, err := pathID(ctx, "courier_id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCourierStatusQuery(courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	workload, err := s.getCourierStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, workloadToResponse(workload))
}

// CourierStatistics handles GET /api/v1/couriers/:id/statistics.
func (s *Server) CourierStatistics(ctx echo.Context) error {
	courierID, err := pathID(ctx, "courier_id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCourierStatisticsQuery(courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	statistics, err := s.getCourierStatisticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, statisticsToResponse(statistics))
}

// PlanningData handles GET /api/v1/planning-data.
func (s *Server) PlanningData(ctx echo.Context) error {
	response, err := s.getRoutePlanningDataHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetRoutePlanningDataQuery(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, planningDataResponse{
		Orders:           ordersToResponse(response.Orders),
		SelectableOrders: ordersToResponse(response.SelectableOrders),
		Couriers:         couriersToResponse(response.Couriers),
	})
}
