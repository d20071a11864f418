package courier_test

import (
	"testing"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRegions(t *testing.T, values ...int64) []kernel.Region {
	t.Helper()
	regions := make([]kernel.Region, 0, len(values))
	for _, v := range values {
		region, err := kernel.NewRegion(v)
		require.NoError(t, err)
		regions = append(regions, region)
	}
	return regions
}

func mustWindows(t *testing.T, values ...string) []kernel.TimeWindow {
	t.Helper()
	windows, err := kernel.ParseTimeWindows(values)
	require.NoError(t, err)
	return windows
}

func TestNewCourier(t *testing.T) {
	t.Run("creates a valid courier", func(t *testing.T) {
		id := kernel.NewUUID()

		aCourier, err := courier.NewCourier(id, courier.Bike,
			mustRegions(t, 1, 12, 22), mustWindows(t, "11:35-14:05", "09:00-11:00"))

		require.NoError(t, err)
		assert.NoError(t, aCourier.Validate())
		assert.True(t, aCourier.ID().IsEqual(id))
		assert.Equal(t, courier.Bike, aCourier.Transport())
		assert.Equal(t, mustRegions(t, 1, 12, 22), aCourier.Regions())
		assert.Equal(t, mustWindows(t, "11:35-14:05", "09:00-11:00"), aCourier.WorkingHours())
	})

	t.Run("allows empty regions and working hours", func(t *testing.T) {
		aCourier, err := courier.NewCourier(kernel.NewUUID(), courier.Foot, nil, nil)

		require.NoError(t, err)
		assert.Empty(t, aCourier.Regions())
		assert.Empty(t, aCourier.WorkingHours())
	})

	t.Run("returns error when id is empty", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.UUID{}, courier.Foot, nil, nil)
		assert.Error(t, err)
	})

	t.Run("returns error when transport is unknown", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.NewUUID(), courier.Unknown, nil, nil)
		assert.Error(t, err)
	})
}

func TestCourier_ServesRegion(t *testing.T) {
	aCourier, err := courier.NewCourier(kernel.NewUUID(), courier.Car,
		mustRegions(t, 12, 22, 23, 33), mustWindows(t, "09:00-18:00"))
	require.NoError(t, err)

	region22 := mustRegions(t, 22)[0]
	region42 := mustRegions(t, 42)[0]

	assert.True(t, aCourier.ServesRegion(region22))
	assert.False(t, aCourier.ServesRegion(region42))
}

func TestCourier_WorksDuring(t *testing.T) {
	aCourier, err := courier.NewCourier(kernel.NewUUID(), courier.Foot,
		mustRegions(t, 1), mustWindows(t, "11:35-14:05", "09:00-11:00"))
	require.NoError(t, err)

	t.Run("true when any pair of windows overlaps", func(t *testing.T) {
		assert.True(t, aCourier.WorksDuring(mustWindows(t, "12:00-13:00")))
		assert.True(t, aCourier.WorksDuring(mustWindows(t, "16:00-17:00", "10:30-11:40")))
	})

	t.Run("false when no pair overlaps", func(t *testing.T) {
		assert.False(t, aCourier.WorksDuring(mustWindows(t, "14:05-16:00")))
		assert.False(t, aCourier.WorksDuring(nil))
	})

	t.Run("touching endpoints do not overlap", func(t *testing.T) {
		assert.False(t, aCourier.WorksDuring(mustWindows(t, "11:00-11:35")))
	})
}

func TestCourier_ChangeTransport(t *testing.T) {
	aCourier, err := courier.NewCourier(kernel.NewUUID(), courier.Car,
		mustRegions(t, 1), mustWindows(t, "09:00-18:00"))
	require.NoError(t, err)

	t.Run("changes to a valid transport", func(t *testing.T) {
		require.NoError(t, aCourier.ChangeTransport(courier.Foot))
		assert.Equal(t, courier.Foot, aCourier.Transport())
	})

	t.Run("rejects unknown transport", func(t *testing.T) {
		assert.Error(t, aCourier.ChangeTransport(courier.Unknown))
		assert.Equal(t, courier.Foot, aCourier.Transport())
	})
}

func TestCourier_SetRegionsAndWorkingHours(t *testing.T) {
	aCourier, err := courier.NewCourier(kernel.NewUUID(), courier.Bike,
		mustRegions(t, 1, 2), mustWindows(t, "09:00-18:00"))
	require.NoError(t, err)

	require.NoError(t, aCourier.SetRegions(mustRegions(t, 5)))
	assert.Equal(t, mustRegions(t, 5), aCourier.Regions())

	require.NoError(t, aCourier.SetWorkingHours(mustWindows(t, "08:00-12:00", "13:00-17:00")))
	assert.Equal(t, mustWindows(t, "08:00-12:00", "13:00-17:00"), aCourier.WorkingHours())
}

func TestCourier_Validate(t *testing.T) {
	t.Run("returns error when courier is not constructed", func(t *testing.T) {
		var aCourier courier.Courier
		assert.ErrorIs(t, aCourier.Validate(), courier.ErrCourierIsNotConstructed)
	})
}

func TestCourier_IsEqual(t *testing.T) {
	first, err := courier.NewCourier(kernel.NewUUID(), courier.Foot,
		mustRegions(t, 1), mustWindows(t, "09:00-18:00"))
	require.NoError(t, err)
	second, err := courier.NewCourier(kernel.NewUUID(), courier.Foot,
		mustRegions(t, 1), mustWindows(t, "09:00-18:00"))
	require.NoError(t, err)

	assert.True(t, first.IsEqual(first))
	assert.False(t, first.IsEqual(second))
}
