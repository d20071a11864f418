package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand marks an order as delivered by the courier it is
// assigned to.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	courierID    kernel.UUID
	orderID      kernel.UUID
	completeTime *time.Time

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a completion command for the given
// courier/order pair. completeTime overrides the completion timestamp
// when the caller supplies one; nil means "now".
func NewCompleteOrderCommand(courierID, orderID kernel.UUID, completeTime *time.Time) (CompleteOrderCommand, error) {
	command := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if completeTime != nil {
		at := completeTime.UTC()
		command.completeTime = &at
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setOrderID(orderID),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// CourierID returns the delivering courier's ID.
func (c CompleteOrderCommand) CourierID() kernel.UUID {
	return c.courierID
}

// OrderID returns the delivered order's ID.
func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CompleteTime returns the caller-supplied completion timestamp, or nil
// when the handler should use the current time.
func (c CompleteOrderCommand) CompleteTime() *time.Time {
	return c.completeTime
}

func (c *CompleteOrderCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}

func (c *CompleteOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}
