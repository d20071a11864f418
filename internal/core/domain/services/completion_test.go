package services_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderCompleter_Complete(t *testing.T) {
	completer := services.NewOrderCompleter()

	t.Run("first delivery of a batch is measured from the assignment", func(t *testing.T) {
		aCourier := newCourier(t, courier.Bike, []int64{1}, "09:00-18:00")
		anOrder := newOrder(t, 5, 1, "10:00-12:00")
		assignedAt := testTime(t)
		assignTo(t, aCourier, assignedAt, anOrder)
		completedAt := assignedAt.Add(25 * time.Minute)

		require.NoError(t, completer.Complete(aCourier, anOrder, []*order.Order{anOrder}, completedAt))

		assert.Equal(t, order.Completed, anOrder.Status())
		assert.Equal(t, completedAt, *anOrder.CompletedAt())
		assert.Equal(t, 25*time.Minute, *anOrder.DeliveryDuration())
	})

	t.Run("subsequent deliveries are measured from the previous drop-off", func(t *testing.T) {
		aCourier := newCourier(t, courier.Bike, []int64{1}, "09:00-18:00")
		first := newOrder(t, 5, 1, "10:00-12:00")
		second := newOrder(t, 3, 1, "10:00-12:00")
		third := newOrder(t, 1, 1, "10:00-12:00")
		assignedAt := testTime(t)
		assignTo(t, aCourier, assignedAt, first, second, third)
		batch := []*order.Order{first, second, third}

		require.NoError(t, completer.Complete(aCourier, first, batch, assignedAt.Add(10*time.Minute)))
		require.NoError(t, completer.Complete(aCourier, second, batch, assignedAt.Add(45*time.Minute)))
		require.NoError(t, completer.Complete(aCourier, third, batch, assignedAt.Add(60*time.Minute)))

		assert.Equal(t, 10*time.Minute, *first.DeliveryDuration())
		assert.Equal(t, 35*time.Minute, *second.DeliveryDuration())
		assert.Equal(t, 15*time.Minute, *third.DeliveryDuration())
	})

	t.Run("completions in another batch do not affect the clock", func(t *testing.T) {
		aCourier := newCourier(t, courier.Bike, []int64{1}, "09:00-18:00")
		earlier := newOrder(t, 1, 1, "10:00-12:00")
		assignTo(t, aCourier, testTime(t).Add(-2*time.Hour), earlier)
		require.NoError(t, completer.Complete(aCourier, earlier,
			[]*order.Order{earlier}, testTime(t).Add(-time.Hour)))

		anOrder := newOrder(t, 2, 1, "10:00-12:00")
		assignedAt := testTime(t)
		assignTo(t, aCourier, assignedAt, anOrder)

		require.NoError(t, completer.Complete(aCourier, anOrder,
			[]*order.Order{earlier, anOrder}, assignedAt.Add(5*time.Minute)))

		assert.Equal(t, 5*time.Minute, *anOrder.DeliveryDuration())
	})

	t.Run("completing twice keeps the original result", func(t *testing.T) {
		aCourier := newCourier(t, courier.Foot, []int64{1}, "09:00-18:00")
		anOrder := newOrder(t, 1, 1, "10:00-12:00")
		assignedAt := testTime(t)
		assignTo(t, aCourier, assignedAt, anOrder)
		completedAt := assignedAt.Add(10 * time.Minute)
		require.NoError(t, completer.Complete(aCourier, anOrder, []*order.Order{anOrder}, completedAt))

		require.NoError(t, completer.Complete(aCourier, anOrder,
			[]*order.Order{anOrder}, completedAt.Add(time.Hour)))

		assert.Equal(t, completedAt, *anOrder.CompletedAt())
		assert.Equal(t, 10*time.Minute, *anOrder.DeliveryDuration())
	})

	t.Run("rejects completion by the wrong courier", func(t *testing.T) {
		owner := newCourier(t, courier.Foot, []int64{1}, "09:00-18:00")
		stranger := newCourier(t, courier.Foot, []int64{1}, "09:00-18:00")
		anOrder := newOrder(t, 1, 1, "10:00-12:00")
		assignTo(t, owner, testTime(t), anOrder)

		err := completer.Complete(stranger, anOrder, []*order.Order{anOrder}, testTime(t))

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Assigned, anOrder.Status())
	})

	t.Run("rejects completion of an open order", func(t *testing.T) {
		aCourier := newCourier(t, courier.Foot, []int64{1}, "09:00-18:00")
		anOrder := newOrder(t, 1, 1, "10:00-12:00")

		err := completer.Complete(aCourier, anOrder, nil, testTime(t))

		assert.Error(t, err)
		assert.Equal(t, order.Open, anOrder.Status())
	})
}

func TestRating(t *testing.T) {
	completeIn := func(t *testing.T, aCourier *courier.Courier, region int64, duration time.Duration) *order.Order {
		t.Helper()
		anOrder := newOrder(t, 1, region, "09:00-18:00")
		assignedAt := testTime(t).Add(-duration)
		assignTo(t, aCourier, assignedAt, anOrder)
		require.NoError(t, services.NewOrderCompleter().Complete(aCourier, anOrder,
			[]*order.Order{anOrder}, assignedAt.Add(duration)))
		return anOrder
	}

	t.Run("uses the best regional average", func(t *testing.T) {
		aCourier := newCourier(t, courier.Bike, []int64{1, 2}, "09:00-18:00")
		completed := []*order.Order{
			completeIn(t, aCourier, 1, 30*time.Minute),
			completeIn(t, aCourier, 1, 42*time.Minute),
			completeIn(t, aCourier, 2, 12*time.Minute),
		}

		rating, ok := services.Rating(completed)

		// Region 2 averages 720s: 5 * (3600-720) / 3600 = 4.
		require.True(t, ok)
		assert.InDelta(t, 4.0, rating, 0.001)
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		aCourier := newCourier(t, courier.Foot, []int64{1}, "09:00-18:00")
		completed := []*order.Order{completeIn(t, aCourier, 1, 1000*time.Second)}

		rating, ok := services.Rating(completed)

		// 5 * (3600-1000) / 3600 = 3.6111... -> 3.61
		require.True(t, ok)
		assert.InDelta(t, 3.61, rating, 0.0001)
	})

	t.Run("averages of an hour or worse score zero", func(t *testing.T) {
		aCourier := newCourier(t, courier.Foot, []int64{1}, "09:00-18:00")
		completed := []*order.Order{completeIn(t, aCourier, 1, 2*time.Hour)}

		rating, ok := services.Rating(completed)

		require.True(t, ok)
		assert.Zero(t, rating)
	})

	t.Run("undefined without completed orders", func(t *testing.T) {
		aCourier := newCourier(t, courier.Foot, []int64{1}, "09:00-18:00")
		assigned := newOrder(t, 1, 1, "10:00-12:00")
		assignTo(t, aCourier, testTime(t), assigned)

		_, ok := services.Rating([]*order.Order{assigned})

		assert.False(t, ok)
	})
}

func TestEarnings(t *testing.T) {
	completer := services.NewOrderCompleter()

	t.Run("pays per fully delivered batch with the transport coefficient", func(t *testing.T) {
		aCourier := newCourier(t, courier.Car, []int64{1}, "09:00-18:00")
		var all []*order.Order

		for i := 0; i < 3; i++ {
			anOrder := newOrder(t, 1, 1, "10:00-12:00")
			assignedAt := testTime(t).Add(time.Duration(i) * time.Hour)
			assignTo(t, aCourier, assignedAt, anOrder)
			require.NoError(t, completer.Complete(aCourier, anOrder,
				[]*order.Order{anOrder}, assignedAt.Add(10*time.Minute)))
			all = append(all, anOrder)
		}

		assert.Equal(t, int64(13500), services.Earnings(aCourier, all))
	})

	t.Run("a batch with an undelivered order does not count", func(t *testing.T) {
		aCourier := newCourier(t, courier.Bike, []int64{1}, "09:00-18:00")
		done := newOrder(t, 1, 1, "10:00-12:00")
		pending := newOrder(t, 2, 1, "10:00-12:00")
		assignedAt := testTime(t)
		assignTo(t, aCourier, assignedAt, done, pending)
		require.NoError(t, completer.Complete(aCourier, done,
			[]*order.Order{done, pending}, assignedAt.Add(10*time.Minute)))

		assert.Zero(t, services.Earnings(aCourier, []*order.Order{done, pending}))
	})

	t.Run("ignores other couriers' orders", func(t *testing.T) {
		aCourier := newCourier(t, courier.Foot, []int64{1}, "09:00-18:00")
		other := newCourier(t, courier.Foot, []int64{1}, "09:00-18:00")
		foreign := newOrder(t, 1, 1, "10:00-12:00")
		assignedAt := testTime(t)
		assignTo(t, other, assignedAt, foreign)
		require.NoError(t, completer.Complete(other, foreign,
			[]*order.Order{foreign}, assignedAt.Add(time.Minute)))

		assert.Zero(t, services.Earnings(aCourier, []*order.Order{foreign}))
	})
}
