package services_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func newCourier(t *testing.T, transport courier.Transport, regions []int64, hours ...string) *courier.Courier {
	t.Helper()

	regionValues := make([]kernel.Region, 0, len(regions))
	for _, v := range regions {
		region, err := kernel.NewRegion(v)
		require.NoError(t, err)
		regionValues = append(regionValues, region)
	}

	windows, err := kernel.ParseTimeWindows(hours)
	require.NoError(t, err)

	aCourier, err := courier.NewCourier(kernel.NewUUID(), transport, regionValues, windows)
	require.NoError(t, err)
	return aCourier
}

func newOrder(t *testing.T, kg float64, region int64, hours ...string) *order.Order {
	t.Helper()

	weight, err := kernel.NewWeightFromFloat(kg)
	require.NoError(t, err)
	regionValue, err := kernel.NewRegion(region)
	require.NoError(t, err)
	windows, err := kernel.ParseTimeWindows(hours)
	require.NoError(t, err)

	anOrder, err := order.NewOrder(kernel.NewUUID(), weight, regionValue, windows)
	require.NoError(t, err)
	return anOrder
}

func assignTo(t *testing.T, aCourier *courier.Courier, at time.Time, orders ...*order.Order) {
	t.Helper()
	for _, anOrder := range orders {
		require.NoError(t, anOrder.Assign(aCourier.ID(), at))
	}
}

func testTime(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
}

func orderIDs(orders []*order.Order) []string {
	ids := make([]string, 0, len(orders))
	for _, anOrder := range orders {
		ids = append(ids, anOrder.ID().String())
	}
	return ids
}
