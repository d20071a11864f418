package services

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
)

// ErrCourierOverCapacity is returned when dispatch is attempted for a
// courier whose assigned load already exceeds its transport capacity.
// The call fails before any order is touched; the courier must be
// reconciled first.
var ErrCourierOverCapacity = errors.New("courier is over capacity")

// dispatchBatchSize is how many eligible orders are scanned per page.
// Paging bounds the working set on large pools; the early-stop rule
// keeps the result identical to scanning the whole sequence at once.
const dispatchBatchSize = 5

// OrderDispatcher is a domain service that packs eligible open orders
// into a courier's remaining capacity.
//
// The policy is greedy heaviest-first with early stop: eligible orders
// are scanned by descending weight, and the scan halts at the first
// order that does not fit, even if a lighter order further down would.
// Favoring heavy orders first reduces fragmentation of the order pool;
// the hard stop keeps one oversized order from being starved by a
// stream of small ones.
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch assigns open orders to the courier and returns them in
// acceptance order. All orders accepted in one call share the same
// assignment timestamp, forming one assignment batch.
//
// assignedOrders is the courier's current load, used to compute the
// remaining capacity; openOrders is the pool to draw from. If the
// courier is already over capacity the call fails with
// ErrCourierOverCapacity and nothing is mutated.
//
// An empty result is not an error: a courier with no eligible orders,
// or whose heaviest eligible order does not fit, simply gets nothing.
func (d OrderDispatcher) Dispatch(
	aCourier *courier.Courier,
	assignedOrders []*order.Order,
	openOrders []*order.Order,
	at time.Time,
) ([]*order.Order, error) {
	if err := aCourier.Validate(); err != nil {
		return nil, err
	}

	remaining := RemainingCapacity(aCourier, assignedOrders)
	if remaining.IsNegative() {
		return nil, ErrCourierOverCapacity
	}

	eligible := AvailableOrders(aCourier, openOrders, order.Open, true, WeightDescending)

	accepted := make([]*order.Order, 0, len(eligible))
	for start := 0; start < len(eligible); start += dispatchBatchSize {
		end := min(start+dispatchBatchSize, len(eligible))

		for _, anOrder := range eligible[start:end] {
			if !remaining.CanFit(anOrder.Weight()) {
				return accepted, nil
			}

			if err := anOrder.Assign(aCourier.ID(), at); err != nil {
				return nil, err
			}

			remaining = remaining.Sub(anOrder.Weight())
			accepted = append(accepted, anOrder)
		}
	}

	return accepted, nil
}
