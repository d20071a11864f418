package order

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Weight bounds for a single order, in hundredths of a kilogram.
const (
	minWeightHundredths = 1
	maxWeightHundredths = 5000
)

// Order is the aggregate root for a delivery order. It owns the order
// lifecycle from creation through assignment to completion.
//
// Invariants:
//   - weight stays within [0.01, 50] kg
//   - at least one delivery window is present
//   - an order is linked to a courier exactly while it is assigned or
//     completed, and never while it is open
//   - status transitions follow the Status state machine
type Order struct {
	id               kernel.UUID
	courierID        *kernel.UUID
	weight           kernel.Weight
	region           kernel.Region
	deliveryHours    []kernel.TimeWindow
	status           Status
	assignedAt       *time.Time
	completedAt      *time.Time
	deliveryDuration *time.Duration

	guard guard.ConstructorGuard
}

// NewOrder creates an open, unassigned order.
//
// The weight must fall within [0.01, 50] kg and at least one delivery
// window is required. All validation failures are joined into a single
// error so callers see every problem at once.
func NewOrder(
	id kernel.UUID,
	weight kernel.Weight,
	region kernel.Region,
	deliveryHours []kernel.TimeWindow,
) (*Order, error) {
	anOrder := &Order{
		status: Open,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		anOrder.setID(id),
		anOrder.setWeight(weight),
		anOrder.setRegion(region),
		anOrder.setDeliveryHours(deliveryHours),
	); err != nil {
		return nil, err
	}

	return anOrder, nil
}

// RestoreOrder reconstructs an order from persistence, including its
// status, courier linkage and lifecycle timestamps.
//
// Beyond field validation it checks that the courier linkage is
// consistent with the restored status.
func RestoreOrder(
	id kernel.UUID,
	weight kernel.Weight,
	region kernel.Region,
	deliveryHours []kernel.TimeWindow,
	status Status,
	courierID *kernel.UUID,
	assignedAt *time.Time,
	completedAt *time.Time,
	deliveryDuration *time.Duration,
) (*Order, error) {
	anOrder := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		anOrder.setID(id),
		anOrder.setWeight(weight),
		anOrder.setRegion(region),
		anOrder.setDeliveryHours(deliveryHours),
		anOrder.setStatus(status),
		anOrder.setCourierID(courierID),
	); err != nil {
		return nil, err
	}

	anOrder.assignedAt = assignedAt
	anOrder.completedAt = completedAt
	anOrder.deliveryDuration = deliveryDuration
	return anOrder, nil
}

// Validate ensures the Order was constructed through NewOrder or
// RestoreOrder rather than instantiated directly.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Weight returns the order's weight.
func (o *Order) Weight() kernel.Weight {
	return o.weight
}

// Region returns the delivery region.
func (o *Order) Region() kernel.Region {
	return o.region
}

// DeliveryHours returns a copy of the order's delivery windows.
func (o *Order) DeliveryHours() []kernel.TimeWindow {
	hours := make([]kernel.TimeWindow, len(o.deliveryHours))
	copy(hours, o.deliveryHours)
	return hours
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CourierID returns the linked courier's ID, or nil while the order is open.
func (o *Order) CourierID() *kernel.UUID {
	if o.courierID == nil {
		return nil
	}
	courierID := *o.courierID
	return &courierID
}

// AssignedAt returns the time of the assignment the order belongs to,
// or nil while the order is open. Orders assigned in the same dispatch
// batch share this timestamp.
func (o *Order) AssignedAt() *time.Time {
	return o.assignedAt
}

// CompletedAt returns the delivery time, or nil until the order is completed.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// DeliveryDuration returns how long the delivery took, or nil until the
// order is completed.
func (o *Order) DeliveryDuration() *time.Duration {
	return o.deliveryDuration
}

// Assign links the order to a courier at the given time and moves it to
// Assigned. Only open orders can be assigned.
func (o *Order) Assign(courierID kernel.UUID, at time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	o.assignedAt = &at
	return nil
}

// Complete marks the order as delivered at the given time and records
// how long the delivery took. The courier linkage is kept so completed
// work still counts toward the courier's rating and earnings.
//
// Completing an already completed order is a no-op: the original
// completion time and duration are preserved.
func (o *Order) Complete(at time.Time, duration time.Duration) error {
	if o.status == Completed {
		return nil
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.completedAt = &at
	o.deliveryDuration = &duration
	return nil
}

// Reopen reverts an assignment, unlinking the courier and returning the
// order to the open pool. Completed orders cannot be reopened.
func (o *Order) Reopen() error {
	newStatus, err := o.status.Reopen()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = nil
	o.assignedAt = nil
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	if weight.Hundredths() < minWeightHundredths || weight.Hundredths() > maxWeightHundredths {
		return errs.NewValueIsOutOfRangeError("weight",
			weight.Float64(), 0.01, 50.0)
	}
	o.weight = weight
	return nil
}

func (o *Order) setRegion(region kernel.Region) error {
	if err := region.Validate(); err != nil {
		return err
	}
	o.region = region
	return nil
}

func (o *Order) setDeliveryHours(deliveryHours []kernel.TimeWindow) error {
	if len(deliveryHours) == 0 {
		return errs.NewValueIsRequiredError("deliveryHours")
	}
	for _, window := range deliveryHours {
		if err := window.Validate(); err != nil {
			return err
		}
	}
	o.deliveryHours = make([]kernel.TimeWindow, len(deliveryHours))
	copy(o.deliveryHours, deliveryHours)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCourierID(courierID *kernel.UUID) error {
	if err := o.status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return err
		}
		id := *courierID
		o.courierID = &id
	}
	return nil
}
