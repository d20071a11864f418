package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAssignOrdersCommandIsNotConstructed = errors.New(
	"AssignOrdersCommand must be created via NewAssignOrdersCommand constructor",
)

// AssignOrdersCommand requests a dispatch run for one courier: pack as
// many eligible open orders as fit into the courier's remaining
// capacity, heaviest first.
type AssignOrdersCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignOrdersCommand creates a dispatch command for the given courier.
func NewAssignOrdersCommand(courierID kernel.UUID) (AssignOrdersCommand, error) {
	command := AssignOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCourierID(courierID); err != nil {
		return AssignOrdersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrdersCommandIsNotConstructed)
}

// CourierID returns the courier to dispatch for.
func (c AssignOrdersCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *AssignOrdersCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}
