package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetSuitableCouriersQueryIsNotConstructed = errors.New(
	"GetSuitableCouriersQuery must be created via NewGetSuitableCouriersQuery constructor",
)

// GetSuitableCouriersQuery requests the suitability advisory for a selection
// of orders. The advisory is non-binding: all couriers stay selectable, the
// suitable ones are merely surfaced first.
type GetSuitableCouriersQuery struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.ID

	guard guard.ConstructorGuard
}

// NewGetSuitableCouriersQuery creates a query for the given selection.
func NewGetSuitableCouriersQuery(orderIDs []kernel.ID) (GetSuitableCouriersQuery, error) {
	query := GetSuitableCouriersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderIDs(orderIDs); err != nil {
		return GetSuitableCouriersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSuitableCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetSuitableCouriersQueryIsNotConstructed)
}

// OrderIDs returns the selected orders.
func (q GetSuitableCouriersQuery) OrderIDs() []kernel.ID {
	return q.orderIDs
}

func (q *GetSuitableCouriersQuery) setOrderIDs(orderIDs []kernel.ID) error {
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
