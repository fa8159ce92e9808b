// Package queries contains the read operations of the workflow: route
// candidates, suitability advisories, zone classifications and courier
// workload views. Queries never write to either backend.
package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrComputeCandidateRouteQueryIsNotConstructed = errors.New(
		"ComputeCandidateRouteQuery must be created via NewComputeCandidateRouteQuery constructor",
	)

	// ErrNoOrdersSelected is returned for an empty order selection. The check
	// runs in the constructor so no network call is ever made for an empty
	// selection.
	ErrNoOrdersSelected = errors.New("at least one order must be selected")
)

// ComputeCandidateRouteQuery represents a request to compute an optimized
// route candidate for a selection of orders. Nothing is persisted: the
// result is a candidate the operator may save or discard.
//
// Example:
//
//	query, err := NewComputeCandidateRouteQuery(selection)
//	if err != nil {
//	    return fmt.Errorf("invalid selection: %w", err)
//	}
//
//	candidate, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("computation failed: %w", err)
//	}
//	fmt.Printf("candidate covers %.2f km", candidate.TotalDistance.Kilometers())
type ComputeCandidateRouteQuery struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.ID

	guard guard.ConstructorGuard
}

// NewComputeCandidateRouteQuery creates a query for the given selection.
// Returns ErrNoOrdersSelected for an empty selection.
func NewComputeCandidateRouteQuery(orderIDs []kernel.ID) (ComputeCandidateRouteQuery, error) {
	query := ComputeCandidateRouteQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderIDs(orderIDs); err != nil {
		return ComputeCandidateRouteQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ComputeCandidateRouteQuery) Validate() error {
	return q.guard.Validate(ErrComputeCandidateRouteQueryIsNotConstructed)
}

// OrderIDs returns the selected orders.
func (q ComputeCandidateRouteQuery) OrderIDs() []kernel.ID {
	return q.orderIDs
}

func (q *ComputeCandidateRouteQuery) setOrderIDs(orderIDs []kernel.ID) error {
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
