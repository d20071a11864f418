package services_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderDispatcher_Dispatch(t *testing.T) {
	dispatcher := services.NewOrderDispatcher()

	t.Run("packs heaviest orders first within capacity", func(t *testing.T) {
		aCourier := newCourier(t, courier.Bike, []int64{1}, "09:00-18:00")
		light := newOrder(t, 2, 1, "10:00-12:00")
		medium := newOrder(t, 5, 1, "10:00-12:00")
		heavy := newOrder(t, 10, 1, "10:00-12:00")
		at := testTime(t)

		accepted, err := dispatcher.Dispatch(aCourier, nil,
			[]*order.Order{light, medium, heavy}, at)

		require.NoError(t, err)
		assert.Equal(t, orderIDs([]*order.Order{heavy, medium}), orderIDs(accepted))
		for _, anOrder := range accepted {
			assert.Equal(t, order.Assigned, anOrder.Status())
			assert.True(t, anOrder.CourierID().IsEqual(aCourier.ID()))
			assert.Equal(t, at, *anOrder.AssignedAt())
		}
		assert.Equal(t, order.Open, light.Status())
	})

	t.Run("all orders of one call share the assignment timestamp", func(t *testing.T) {
		aCourier := newCourier(t, courier.Car, []int64{1}, "09:00-18:00")
		first := newOrder(t, 1, 1, "10:00-12:00")
		second := newOrder(t, 2, 1, "10:00-12:00")
		at := testTime(t)

		accepted, err := dispatcher.Dispatch(aCourier, nil, []*order.Order{first, second}, at)

		require.NoError(t, err)
		require.Len(t, accepted, 2)
		assert.Equal(t, *accepted[0].AssignedAt(), *accepted[1].AssignedAt())
	})

	t.Run("stops entirely at the first order that does not fit", func(t *testing.T) {
		aCourier := newCourier(t, courier.Foot, []int64{1}, "09:00-18:00")
		tooHeavy := newOrder(t, 10, 1, "10:00-12:00")
		wouldFit := newOrder(t, 1, 1, "10:00-12:00")

		load := newOrder(t, 8, 1, "10:00-12:00")
		assignTo(t, aCourier, testTime(t), load)

		accepted, err := dispatcher.Dispatch(aCourier, []*order.Order{load},
			[]*order.Order{tooHeavy, wouldFit}, testTime(t))

		require.NoError(t, err)
		assert.Empty(t, accepted)
		assert.Equal(t, order.Open, wouldFit.Status())
	})

	t.Run("fails without mutation when already over capacity", func(t *testing.T) {
		aCourier := newCourier(t, courier.Car, []int64{1}, "09:00-18:00")
		heavy := newOrder(t, 16, 1, "10:00-12:00")
		assignTo(t, aCourier, testTime(t), heavy)
		require.NoError(t, aCourier.ChangeTransport(courier.Foot))
		open := newOrder(t, 1, 1, "10:00-12:00")

		_, err := dispatcher.Dispatch(aCourier, []*order.Order{heavy},
			[]*order.Order{open}, testTime(t))

		assert.ErrorIs(t, err, services.ErrCourierOverCapacity)
		assert.Equal(t, order.Open, open.Status())
	})

	t.Run("keeps packing across scan pages", func(t *testing.T) {
		aCourier := newCourier(t, courier.Car, []int64{1}, "09:00-18:00")
		pool := make([]*order.Order, 0, 7)
		for i := 0; i < 7; i++ {
			pool = append(pool, newOrder(t, 1, 1, "10:00-12:00"))
		}

		accepted, err := dispatcher.Dispatch(aCourier, nil, pool, testTime(t))

		require.NoError(t, err)
		assert.Len(t, accepted, 7)
	})

	t.Run("capacity admits one full-weight order at a time", func(t *testing.T) {
		aCourier := newCourier(t, courier.Car, []int64{1, 2, 3}, "09:00-18:00")
		pool := []*order.Order{
			newOrder(t, 50, 1, "09:00-18:00"),
			newOrder(t, 50, 2, "09:00-18:00"),
			newOrder(t, 50, 3, "09:00-18:00"),
		}
		completer := services.NewOrderCompleter()
		at := testTime(t)

		var load []*order.Order
		for i := 0; i < 3; i++ {
			accepted, err := dispatcher.Dispatch(aCourier, load, pool, at)
			require.NoError(t, err)
			require.Len(t, accepted, 1, "call %d must assign exactly one order", i+1)

			at = at.Add(30 * time.Minute)
			require.NoError(t, completer.Complete(aCourier, accepted[0], load, at))
			load = append(load, accepted[0])
		}
	})
}
