package services

import (
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
)

// Reconciler is a domain service that restores the capacity invariant
// after a courier change that shrank its capacity, such as a transport
// downgrade.
type Reconciler struct{}

// NewReconciler creates a new Reconciler.
func NewReconciler() Reconciler {
	return Reconciler{}
}

// Reconcile reverts assigned orders back to the open pool, lightest
// first, until the courier's remaining capacity is non-negative or no
// assigned orders are left. It returns the reverted orders.
//
// Reverting lightest-first keeps the largest deliveries in progress.
// Residual negative capacity with nothing left to revert is tolerated;
// the courier simply cannot be dispatched to until it completes or
// upgrades.
func (r Reconciler) Reconcile(aCourier *courier.Courier, assignedOrders []*order.Order) ([]*order.Order, error) {
	if err := aCourier.Validate(); err != nil {
		return nil, err
	}

	remaining := RemainingCapacity(aCourier, assignedOrders)
	if !remaining.IsNegative() {
		return nil, nil
	}

	load := make([]*order.Order, 0, len(assignedOrders))
	for _, anOrder := range assignedOrders {
		courierID := anOrder.CourierID()
		if anOrder.Status() != order.Assigned || courierID == nil || !courierID.IsEqual(aCourier.ID()) {
			continue
		}
		load = append(load, anOrder)
	}
	sortByWeight(load, WeightAscending)

	reverted := make([]*order.Order, 0, len(load))
	for _, anOrder := range load {
		if !remaining.IsNegative() {
			break
		}

		weight := anOrder.Weight()
		if err := anOrder.Reopen(); err != nil {
			return nil, err
		}

		remaining = remaining.Add(weight)
		reverted = append(reverted, anOrder)
	}

	return reverted, nil
}
