package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetCourierStatusQueryIsNotConstructed = errors.New(
	"GetCourierStatusQuery must be created via NewGetCourierStatusQuery constructor",
)

// GetCourierStatusQuery requests a courier's current workload snapshot.
type GetCourierStatusQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetCourierStatusQuery creates a query for the given courier.
func NewGetCourierStatusQuery(courierID kernel.ID) (GetCourierStatusQuery, error) {
	query := GetCourierStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCourierID(courierID); err != nil {
		return GetCourierStatusQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierStatusQueryIsNotConstructed)
}

// CourierID returns the courier being inspected.
func (q GetCourierStatusQuery) CourierID() kernel.ID {
	return q.courierID
}

func (q *GetCourierStatusQuery) setCourierID(courierID kernel.ID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	q.courierID = courierID
	return nil
}
