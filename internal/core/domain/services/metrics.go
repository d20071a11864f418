package services

import (
	"math"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
)

// Rating and earnings parameters.
const (
	// ratingWindowSeconds is the delivery duration that maps to a zero
	// rating. Faster regional averages scale linearly up to 5.
	ratingWindowSeconds = 3600.0

	// paymentPerBatch is the flat payout for one fully delivered
	// assignment batch, before the transport coefficient.
	paymentPerBatch = 500
)

// Rating computes a courier's rating from its completed orders.
//
// For every region with completed deliveries the average delivery
// duration is taken; the best (lowest) regional average determines the
// rating on a linear scale where an hour or worse scores 0 and an
// instant delivery scores 5, rounded to two decimals.
//
// The second return value is false when the courier has no completed
// orders with a recorded duration, meaning the rating is undefined.
func Rating(completedOrders []*order.Order) (float64, bool) {
	sums := make(map[int64]float64)
	counts := make(map[int64]int)

	for _, anOrder := range completedOrders {
		if anOrder.Status() != order.Completed || anOrder.DeliveryDuration() == nil {
			continue
		}
		region := anOrder.Region().Int64()
		sums[region] += anOrder.DeliveryDuration().Seconds()
		counts[region]++
	}

	if len(counts) == 0 {
		return 0, false
	}

	best := math.Inf(1)
	for region, sum := range sums {
		avg := sum / float64(counts[region])
		if avg < best {
			best = avg
		}
	}

	best = math.Min(best, ratingWindowSeconds)
	rating := 5 * (ratingWindowSeconds - best) / ratingWindowSeconds
	return math.Round(rating*100) / 100, true
}

// Earnings computes a courier's total payout: the number of assignment
// batches in which every order has been delivered, times the flat batch
// payment, times the transport's earnings coefficient.
//
// Batches with any order still assigned do not count until their last
// delivery lands. Orders of other couriers in the input are ignored.
func Earnings(aCourier *courier.Courier, orders []*order.Order) int64 {
	type batchState struct {
		fullyComplete bool
	}

	batches := make(map[int64]*batchState)

	for _, anOrder := range orders {
		courierID := anOrder.CourierID()
		if courierID == nil || !courierID.IsEqual(aCourier.ID()) {
			continue
		}
		if anOrder.AssignedAt() == nil {
			continue
		}

		key := anOrder.AssignedAt().UnixNano()
		state, ok := batches[key]
		if !ok {
			state = &batchState{fullyComplete: true}
			batches[key] = state
		}
		if anOrder.Status() != order.Completed {
			state.fullyComplete = false
		}
	}

	var completeBatches int64
	for _, state := range batches {
		if state.fullyComplete {
			completeBatches++
		}
	}

	return completeBatches * paymentPerBatch * aCourier.Transport().Coefficient()
}
