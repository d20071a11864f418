package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new delivery
// order: a weight in kilograms, a destination region and one or more
// delivery windows as HH:MM-HH:MM strings.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	weight        kernel.Weight
	region        kernel.Region
	deliveryHours []kernel.TimeWindow

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// A unique order ID is generated here. The weight range check belongs
// to the order aggregate; the command only requires a parseable value.
func NewCreateOrderCommand(weight float64, region int64, deliveryHours []string) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(kernel.NewUUID()),
		command.setWeight(weight),
		command.setRegion(region),
		command.setDeliveryHours(deliveryHours),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the generated order ID.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Weight returns the parsed order weight.
func (c CreateOrderCommand) Weight() kernel.Weight {
	return c.weight
}

// Region returns the destination region.
func (c CreateOrderCommand) Region() kernel.Region {
	return c.region
}

// DeliveryHours returns the parsed delivery windows.
func (c CreateOrderCommand) DeliveryHours() []kernel.TimeWindow {
	return c.deliveryHours
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setWeight(value float64) error {
	weight, err := kernel.NewWeightFromFloat(value)
	if err != nil {
		return err
	}

	c.weight = weight
	return nil
}

func (c *CreateOrderCommand) setRegion(value int64) error {
	region, err := kernel.NewRegion(value)
	if err != nil {
		return err
	}

	c.region = region
	return nil
}

func (c *CreateOrderCommand) setDeliveryHours(values []string) error {
	windows, err := kernel.ParseTimeWindows(values)
	if err != nil {
		return err
	}

	c.deliveryHours = windows
	return nil
}
