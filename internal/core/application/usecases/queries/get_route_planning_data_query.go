package queries

import (
	"errors"

	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/guard"
)

var ErrGetRoutePlanningDataQueryIsNotConstructed = errors.New(
	"GetRoutePlanningDataQuery must be created via NewGetRoutePlanningDataQuery constructor",
)

// GetRoutePlanningDataQuery requests everything the operator needs to start
// planning: the full order list and the courier roster.
type GetRoutePlanningDataQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRoutePlanningDataQuery creates a parameterless planning-data query.
func NewGetRoutePlanningDataQuery() GetRoutePlanningDataQuery {
	return GetRoutePlanningDataQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetRoutePlanningDataQuery) Validate() error {
	return q.guard.Validate(ErrGetRoutePlanningDataQueryIsNotConstructed)
}

// GetRoutePlanningDataQueryResponse carries the order list and courier
// roster for the planning screen. SelectableOrders is the ready subset of
// Orders; orders already on a route or delivered are listed but not
// selectable.
type GetRoutePlanningDataQueryResponse struct {
	Orders           []*order.Order
	SelectableOrders []*order.Order
	Couriers         []*courier.Courier
}
