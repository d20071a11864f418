package kernel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeight(t *testing.T) {
	t.Run("should create weight from hundredths", func(t *testing.T) {
		w, err := kernel.NewWeight(1250)

		require.NoError(t, err)
		assert.NoError(t, w.Validate())
		assert.Equal(t, int64(1250), w.Hundredths())
		assert.InDelta(t, 12.5, w.Float64(), 0.0001)
	})

	t.Run("should reject non-positive values", func(t *testing.T) {
		for _, hundredths := range []int64{0, -1, -100} {
			_, err := kernel.NewWeight(hundredths)
			assert.Error(t, err, "expected error for %d", hundredths)
		}
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var w kernel.Weight
		assert.Equal(t, kernel.ErrWeightIsNotConstructed, w.Validate())
	})
}

func TestNewWeightFromFloat(t *testing.T) {
	t.Run("should round to two decimal places", func(t *testing.T) {
		testCases := []struct {
			kilograms  float64
			hundredths int64
		}{
			{0.01, 1},
			{1, 100},
			{12.5, 1250},
			{50, 5000},
			{0.014999, 1},
		}

		for _, tc := range testCases {
			w, err := kernel.NewWeightFromFloat(tc.kilograms)
			require.NoError(t, err)
			assert.Equal(t, tc.hundredths, w.Hundredths(), "for %v kg", tc.kilograms)
		}
	})

	t.Run("should reject zero and negative weights", func(t *testing.T) {
		_, err := kernel.NewWeightFromFloat(0)
		assert.Error(t, err)

		_, err = kernel.NewWeightFromFloat(-1.5)
		assert.Error(t, err)
	})
}

func TestWeight_String(t *testing.T) {
	t.Run("formats the shortest decimal representation", func(t *testing.T) {
		testCases := []struct {
			hundredths int64
			expected   string
		}{
			{1, "0.01"},
			{100, "1"},
			{1250, "12.5"},
			{5000, "50"},
			{33, "0.33"},
		}

		for _, tc := range testCases {
			w, err := kernel.NewWeight(tc.hundredths)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, w.String())
		}
	})
}

func TestWeight_Arithmetic(t *testing.T) {
	t.Run("Add is exact", func(t *testing.T) {
		a, _ := kernel.NewWeight(10) // 0.1
		b, _ := kernel.NewWeight(20) // 0.2

		sum := a.Add(b)
		assert.Equal(t, int64(30), sum.Hundredths())
		assert.Equal(t, "0.3", sum.String())
	})

	t.Run("Cmp orders weights", func(t *testing.T) {
		light, _ := kernel.NewWeight(100)
		heavy, _ := kernel.NewWeight(1500)

		assert.Equal(t, -1, light.Cmp(heavy))
		assert.Equal(t, 1, heavy.Cmp(light))
		assert.Equal(t, 0, light.Cmp(light))
		assert.True(t, light.IsEqual(light))
		assert.False(t, light.IsEqual(heavy))
	})
}

func TestWeightBalance(t *testing.T) {
	t.Run("subtracting below zero goes negative", func(t *testing.T) {
		capacity, _ := kernel.NewWeight(1000) // FOOT ceiling, 10 kg
		load, _ := kernel.NewWeight(1600)     // 16 kg assigned

		balance := kernel.NewWeightBalance(capacity).Sub(load)

		assert.True(t, balance.IsNegative())
		assert.InDelta(t, -6.0, balance.Float64(), 0.0001)
		assert.Equal(t, "-6", balance.String())
	})

	t.Run("CanFit uses half-open comparison against the balance", func(t *testing.T) {
		capacity, _ := kernel.NewWeight(5000)
		balance := kernel.NewWeightBalance(capacity)

		exact, _ := kernel.NewWeight(5000)
		over, _ := kernel.NewWeight(5001)

		assert.True(t, balance.CanFit(exact))
		assert.False(t, balance.CanFit(over))
	})

	t.Run("Add restores reverted weight", func(t *testing.T) {
		capacity, _ := kernel.NewWeight(1000)
		heavy, _ := kernel.NewWeight(1500)

		balance := kernel.NewWeightBalance(capacity).Sub(heavy)
		require.True(t, balance.IsNegative())

		balance = balance.Add(heavy)
		assert.False(t, balance.IsNegative())
		assert.InDelta(t, 10.0, balance.Float64(), 0.0001)
	})
}
