package queries_test

import (
	"context"
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSuitableCouriersQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	selection := []kernel.ID{mustID(t, 101)}

	advisory := []ports.SuitableCourier{{CourierID: mustID(t, 3), Username: "janis"}}
	optimizer := new(MockOptimizerClient)
	optimizer.On("SuitableCouriers", ctx, selection).Return(advisory, nil).Once()

	query, err := queries.NewGetSuitableCouriersQuery(selection)
	require.NoError(t, err)

	h := queries.NewGetSuitableCouriersQueryHandler(optimizer)
	result, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, advisory, result)
}

func TestNewGetSuitableCouriersQuery_EmptySelection(t *testing.T) {
	_, err := queries.NewGetSuitableCouriersQuery(nil)

	assert.ErrorIs(t, err, queries.ErrNoOrdersSelected)
}

func TestGetOrderZonesQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	selection := []kernel.ID{mustID(t, 101)}

	classification := &ports.ZoneClassification{TotalZones: 1}
	optimizer := new(MockOptimizerClient)
	optimizer.On("OrderZones", ctx, selection).Return(classification, nil).Once()

	query, err := queries.NewGetOrderZonesQuery(selection)
	require.NoError(t, err)

	h := queries.NewGetOrderZonesQueryHandler(optimizer)
	result, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, classification, result)
}

func TestGetCourierStatusQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()

	workload := &ports.CourierWorkload{CourierID: mustID(t, 3), Username: "janis"}
	optimizer := new(MockOptimizerClient)
	optimizer.On("CourierStatus", ctx, mustID(t, 3)).Return(workload, nil).Once()

	query, err := queries.NewGetCourierStatusQuery(mustID(t, 3))
	require.NoError(t, err)

	h := queries.NewGetCourierStatusQueryHandler(optimizer)
	result, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, workload, result)
}
