package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetCourierStatisticsQueryIsNotConstructed = errors.New(
	"GetCourierStatisticsQuery must be created via NewGetCourierStatisticsQuery constructor",
)

// GetCourierStatisticsQuery requests aggregate delivery statistics for one
// courier, computed from the persisted routes.
type GetCourierStatisticsQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetCourierStatisticsQuery creates a query for the given courier.
func NewGetCourierStatisticsQuery(courierID kernel.ID) (GetCourierStatisticsQuery, error) {
	query := GetCourierStatisticsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCourierID(courierID); err != nil {
		return GetCourierStatisticsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierStatisticsQueryIsNotConstructed)
}

// CourierID returns the courier being summarized.
func (q GetCourierStatisticsQuery) CourierID() kernel.ID {
	return q.courierID
}

func (q *GetCourierStatisticsQuery) setCourierID(courierID kernel.ID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	q.courierID = courierID
	return nil
}

// GetCourierStatisticsQueryResponse summarizes a courier's route history.
// Distance is reported in kilometers for display; the underlying routes
// store meters.
type GetCourierStatisticsQueryResponse struct {
	CourierID            kernel.ID
	TotalRoutes          int
	CompletedRoutes      int
	TotalDistanceKm      float64
	TotalOrdersDelivered int
}
