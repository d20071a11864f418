package services

import (
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// OrderCompleter is a domain service that marks assigned orders as
// delivered and records how long each delivery took.
//
// Deliveries within one assignment batch are modeled as sequential: an
// order's clock starts when the previous order of the same batch was
// dropped off, or at the batch's assignment time for the first delivery.
type OrderCompleter struct{}

// NewOrderCompleter creates a new OrderCompleter.
func NewOrderCompleter() OrderCompleter {
	return OrderCompleter{}
}

// Complete marks the order as delivered by the given courier at the
// given time.
//
// batchOrders is the set of the courier's orders sharing the order's
// assignment batch; it is scanned for the latest completion to chain
// the delivery duration from. Passing a broader set is safe, orders
// from other batches or couriers are ignored.
//
// Completing an order that belongs to another courier, or one that was
// never assigned, fails without mutation. Completing an already
// completed order for the right courier is a no-op.
func (c OrderCompleter) Complete(
	aCourier *courier.Courier,
	anOrder *order.Order,
	batchOrders []*order.Order,
	at time.Time,
) error {
	if err := aCourier.Validate(); err != nil {
		return err
	}
	if err := anOrder.Validate(); err != nil {
		return err
	}

	courierID := anOrder.CourierID()
	if courierID == nil || !courierID.IsEqual(aCourier.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("courier",
			fmt.Errorf("order %s is not assigned to courier %s", anOrder.ID(), aCourier.ID()))
	}

	if anOrder.Status() == order.Completed {
		return nil
	}

	startedAt := batchStartedAt(anOrder, batchOrders)
	return anOrder.Complete(at, at.Sub(startedAt))
}

// batchStartedAt returns the moment the order's delivery clock started:
// the latest completion within the same assignment batch, or the batch's
// assignment time when the order is the batch's first delivery.
func batchStartedAt(anOrder *order.Order, batchOrders []*order.Order) time.Time {
	assignedAt := *anOrder.AssignedAt()
	startedAt := assignedAt

	for _, other := range batchOrders {
		if other.IsEqual(anOrder) || other.Status() != order.Completed {
			continue
		}
		if !sameBatch(anOrder, other) {
			continue
		}
		if other.CompletedAt().After(startedAt) {
			startedAt = *other.CompletedAt()
		}
	}

	return startedAt
}

func sameBatch(anOrder, other *order.Order) bool {
	if other.AssignedAt() == nil || other.CourierID() == nil || anOrder.CourierID() == nil {
		return false
	}
	return other.AssignedAt().Equal(*anOrder.AssignedAt()) &&
		other.CourierID().IsEqual(*anOrder.CourierID())
}
