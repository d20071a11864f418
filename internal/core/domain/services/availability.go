package services

import (
	"sort"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
)

// SortOrder selects how AvailableOrders orders its result by weight.
type SortOrder int

const (
	// WeightAscending sorts lightest orders first.
	WeightAscending SortOrder = iota

	// WeightDescending sorts heaviest orders first.
	WeightDescending
)

// AvailableOrders returns the orders a courier is eligible for, as a new
// slice ordered by weight in the requested direction.
//
// An order is eligible when its region is served by the courier, its
// status matches requiredStatus, and at least one of the courier's
// working windows overlaps at least one of the order's delivery windows.
// When applyWeightFilter is set, orders heavier than the transport's
// capacity ceiling are excluded; the ceiling is the type-derived maximum,
// not the courier's remaining balance.
//
// Each order appears at most once even if it occurs several times in the
// input or matches through several window pairs. A courier with no
// regions or no working hours gets an empty result.
func AvailableOrders(
	aCourier *courier.Courier,
	orders []*order.Order,
	requiredStatus order.Status,
	applyWeightFilter bool,
	sortOrder SortOrder,
) []*order.Order {
	available := make([]*order.Order, 0, len(orders))
	seen := make(map[string]struct{}, len(orders))

	for _, anOrder := range orders {
		if !matchesRegion(aCourier, anOrder) {
			continue
		}
		if !matchesStatus(anOrder, requiredStatus) {
			continue
		}
		if applyWeightFilter && !fitsCapacityCeiling(aCourier, anOrder) {
			continue
		}
		if !matchesSchedule(aCourier, anOrder) {
			continue
		}

		id := anOrder.ID().String()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		available = append(available, anOrder)
	}

	sortByWeight(available, sortOrder)
	return available
}

func matchesRegion(aCourier *courier.Courier, anOrder *order.Order) bool {
	return aCourier.ServesRegion(anOrder.Region())
}

func matchesStatus(anOrder *order.Order, requiredStatus order.Status) bool {
	return anOrder.Status() == requiredStatus
}

func fitsCapacityCeiling(aCourier *courier.Courier, anOrder *order.Order) bool {
	return anOrder.Weight().Cmp(aCourier.Transport().Capacity()) <= 0
}

func matchesSchedule(aCourier *courier.Courier, anOrder *order.Order) bool {
	return aCourier.WorksDuring(anOrder.DeliveryHours())
}

func sortByWeight(orders []*order.Order, sortOrder SortOrder) {
	sort.SliceStable(orders, func(i, j int) bool {
		if sortOrder == WeightDescending {
			return orders[i].Weight().Cmp(orders[j].Weight()) > 0
		}
		return orders[i].Weight().Cmp(orders[j].Weight()) < 0
	})
}
