package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateCourierCommandIsNotConstructed = errors.New(
	"UpdateCourierCommand must be created via NewUpdateCourierCommand constructor",
)

// UpdateCourierCommand represents a partial update of an existing
// courier. Each field is optional; a nil slice or empty transport name
// leaves the corresponding attribute untouched. Capacity-reducing
// changes trigger reconciliation of the courier's assigned load.
type UpdateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID    kernel.UUID
	transport    *courier.Transport
	regions      []kernel.Region
	workingHours []kernel.TimeWindow
	hasRegions   bool
	hasHours     bool

	guard guard.ConstructorGuard
}

// NewUpdateCourierCommand creates a partial courier update. transport
// is ignored when nil, regions and workingHours when their pointer is
// nil; a pointer to an empty slice clears the attribute.
func NewUpdateCourierCommand(
	courierID kernel.UUID,
	transport *string,
	regions *[]int64,
	workingHours *[]string,
) (UpdateCourierCommand, error) {
	command := UpdateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setTransport(transport),
		command.setRegions(regions),
		command.setWorkingHours(workingHours),
	); err != nil {
		return UpdateCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCourierCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierCommandIsNotConstructed)
}

// CourierID returns the target courier's ID.
func (c UpdateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Transport returns the new transport type, or nil when unchanged.
func (c UpdateCourierCommand) Transport() *courier.Transport {
	return c.transport
}

// Regions returns the new region set and whether it was provided.
func (c UpdateCourierCommand) Regions() ([]kernel.Region, bool) {
	return c.regions, c.hasRegions
}

// WorkingHours returns the new working windows and whether they were provided.
func (c UpdateCourierCommand) WorkingHours() ([]kernel.TimeWindow, bool) {
	return c.workingHours, c.hasHours
}

func (c *UpdateCourierCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}

func (c *UpdateCourierCommand) setTransport(name *string) error {
	if name == nil {
		return nil
	}

	transport, err := courier.TransportFromString(*name)
	if err != nil {
		return err
	}

	c.transport = &transport
	return nil
}

func (c *UpdateCourierCommand) setRegions(values *[]int64) error {
	if values == nil {
		return nil
	}

	regions := make([]kernel.Region, 0, len(*values))
	for _, v := range *values {
		region, err := kernel.NewRegion(v)
		if err != nil {
			return err
		}
		regions = append(regions, region)
	}

	c.regions = regions
	c.hasRegions = true
	return nil
}

func (c *UpdateCourierCommand) setWorkingHours(values *[]string) error {
	if values == nil {
		return nil
	}

	windows, err := kernel.ParseTimeWindows(*values)
	if err != nil {
		return err
	}

	c.workingHours = windows
	c.hasHours = true
	return nil
}
