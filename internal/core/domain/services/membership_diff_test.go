package services_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func ids(values ...int64) []kernel.ID {
	out := make([]kernel.ID, 0, len(values))
	for _, v := range values {
		id, _ := kernel.NewID(v)
		out = append(out, id)
	}
	return out
}

func TestDiffMembership(t *testing.T) {
	t.Run("revision releases removed and claims added orders", func(t *testing.T) {
		// Route #7 held [1,2,3], operator revises to [2,3,4].
		diff := services.DiffMembership(ids(1, 2, 3), ids(2, 3, 4))

		assert.Equal(t, ids(1), diff.ToRelease)
		assert.Equal(t, ids(4), diff.ToClaim)
	})

	t.Run("identical selections produce empty diff", func(t *testing.T) {
		diff := services.DiffMembership(ids(1, 2), ids(2, 1))

		assert.True(t, diff.IsEmpty())
	})

	t.Run("empty previous membership claims everything", func(t *testing.T) {
		diff := services.DiffMembership(nil, ids(5, 6))

		assert.Empty(t, diff.ToRelease)
		assert.Equal(t, ids(5, 6), diff.ToClaim)
	})

	t.Run("empty next membership releases everything", func(t *testing.T) {
		diff := services.DiffMembership(ids(5, 6), nil)

		assert.Equal(t, ids(5, 6), diff.ToRelease)
		assert.Empty(t, diff.ToClaim)
	})

	t.Run("order of results follows input order", func(t *testing.T) {
		diff := services.DiffMembership(ids(9, 4, 7), ids(8, 2))

		assert.Equal(t, ids(9, 4, 7), diff.ToRelease)
		assert.Equal(t, ids(8, 2), diff.ToClaim)
	})

	t.Run("duplicates in input are ignored beyond first occurrence", func(t *testing.T) {
		diff := services.DiffMembership(ids(1, 1, 2), ids(2, 3, 3))

		assert.Equal(t, ids(1), diff.ToRelease)
		assert.Equal(t, ids(3), diff.ToClaim)
	})
}
