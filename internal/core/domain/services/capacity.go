package services

import (
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// RemainingCapacity computes how much more weight the courier can carry:
// the transport's capacity ceiling minus the summed weight of the given
// assigned orders. The result is signed and goes negative when the
// courier is over capacity, for example right after a transport
// downgrade.
//
// Orders not currently assigned to this courier are ignored, so callers
// may pass a broader set than the courier's own load.
func RemainingCapacity(aCourier *courier.Courier, assignedOrders []*order.Order) kernel.WeightBalance {
	balance := kernel.NewWeightBalance(aCourier.Transport().Capacity())

	for _, anOrder := range assignedOrders {
		if anOrder.Status() != order.Assigned {
			continue
		}
		courierID := anOrder.CourierID()
		if courierID == nil || !courierID.IsEqual(aCourier.ID()) {
			continue
		}
		balance = balance.Sub(anOrder.Weight())
	}

	return balance
}
