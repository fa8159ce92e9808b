package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetOrderZonesQueryIsNotConstructed = errors.New(
	"GetOrderZonesQuery must be created via NewGetOrderZonesQuery constructor",
)

// GetOrderZonesQuery requests the zone classification for a selection of
// orders. Display-only: zones never constrain what the operator may select.
type GetOrderZonesQuery struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrderZonesQuery creates a query for the given selection.
func NewGetOrderZonesQuery(orderIDs []kernel.ID) (GetOrderZonesQuery, error) {
	query := GetOrderZonesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderIDs(orderIDs); err != nil {
		return GetOrderZonesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderZonesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderZonesQueryIsNotConstructed)
}

// OrderIDs returns the selected orders.
func (q GetOrderZonesQuery) OrderIDs() []kernel.ID {
	return q.orderIDs
}

func (q *GetOrderZonesQuery) setOrderIDs(orderIDs []kernel.ID) error {
	if len(orderIDs) == 0 {
		return ErrNoOrdersSelected
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	q.orderIDs = orderIDs
	return nil
}
