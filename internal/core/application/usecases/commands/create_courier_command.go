package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CreateCourierCommand represents a request to register a new courier.
// The transport type arrives as its wire name, regions as plain ids and
// working hours as HH:MM-HH:MM strings; the command parses them into
// domain values and generates the courier's identifier.
//
// Example:
//
//	cmd, err := NewCreateCourierCommand("bike", []int64{1, 22}, []string{"09:00-18:00"})
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
//	fmt.Printf("created courier %s", cmd.CourierID())
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID    kernel.UUID
	transport    courier.Transport
	regions      []kernel.Region
	workingHours []kernel.TimeWindow

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a command to register a new courier.
// A unique courier ID is generated here so callers can reference the
// courier right after the command is handled.
func NewCreateCourierCommand(transport string, regions []int64, workingHours []string) (CreateCourierCommand, error) {
	command := CreateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(kernel.NewUUID()),
		command.setTransport(transport),
		command.setRegions(regions),
		command.setWorkingHours(workingHours),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// CourierID returns the generated courier ID.
func (c CreateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Transport returns the parsed transport type.
func (c CreateCourierCommand) Transport() courier.Transport {
	return c.transport
}

// Regions returns the parsed served regions.
func (c CreateCourierCommand) Regions() []kernel.Region {
	return c.regions
}

// WorkingHours returns the parsed working windows.
func (c CreateCourierCommand) WorkingHours() []kernel.TimeWindow {
	return c.workingHours
}

func (c *CreateCourierCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}

func (c *CreateCourierCommand) setTransport(name string) error {
	transport, err := courier.TransportFromString(name)
	if err != nil {
		return err
	}

	c.transport = transport
	return nil
}

func (c *CreateCourierCommand) setRegions(values []int64) error {
	regions := make([]kernel.Region, 0, len(values))
	for _, v := range values {
		region, err := kernel.NewRegion(v)
		if err != nil {
			return err
		}
		regions = append(regions, region)
	}

	c.regions = regions
	return nil
}

func (c *CreateCourierCommand) setWorkingHours(values []string) error {
	windows, err := kernel.ParseTimeWindows(values)
	if err != nil {
		return err
	}

	c.workingHours = windows
	return nil
}
