package courier_test

import (
	"testing"

	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, v int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(v)
	require.NoError(t, err)
	return id
}

func TestNewCourier(t *testing.T) {
	t.Run("creates courier read model", func(t *testing.T) {
		c, err := courier.NewCourier(mustID(t, 3), "janis")

		require.NoError(t, err)
		assert.Equal(t, "janis", c.Username())
		assert.Nil(t, c.Vehicle())
		assert.Nil(t, c.WorkArea())
		require.NoError(t, c.Validate())
	})

	t.Run("rejects empty username", func(t *testing.T) {
		_, err := courier.NewCourier(mustID(t, 3), "")
		require.Error(t, err)
	})

	t.Run("not constructed courier fails validation", func(t *testing.T) {
		var c courier.Courier
		assert.Equal(t, courier.ErrCourierIsNotConstructed, c.Validate())
	})
}

func TestCourier_AttachVehicle(t *testing.T) {
	c, _ := courier.NewCourier(mustID(t, 3), "janis")

	v, err := courier.NewVehicle(mustID(t, 12), "LV-1234", 10, 250)
	require.NoError(t, err)
	require.NoError(t, c.AttachVehicle(v))

	require.NotNil(t, c.Vehicle())
	assert.Equal(t, "LV-1234", c.Vehicle().Number())
	assert.Equal(t, 250.0, c.Vehicle().MaxWeight())
}

func TestNewVehicle(t *testing.T) {
	t.Run("rejects non-positive capacity", func(t *testing.T) {
		_, err := courier.NewVehicle(mustID(t, 12), "LV-1234", 0, 250)
		require.Error(t, err)

		_, err = courier.NewVehicle(mustID(t, 12), "LV-1234", 10, -5)
		require.Error(t, err)
	})
}

func TestCourier_AssignWorkArea(t *testing.T) {
	c, _ := courier.NewCourier(mustID(t, 3), "janis")

	require.NoError(t, c.AssignWorkArea(mustID(t, 2), "Centrs"))

	require.NotNil(t, c.WorkArea())
	assert.Equal(t, "Centrs", c.WorkAreaName())
}

func TestIsCourierRole(t *testing.T) {
	assert.True(t, courier.IsCourierRole("courier"))
	assert.True(t, courier.IsCourierRole("kurjers"))
	assert.False(t, courier.IsCourierRole("admin"))
	assert.False(t, courier.IsCourierRole(""))
}
