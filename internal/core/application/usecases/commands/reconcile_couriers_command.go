package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrReconcileCouriersCommandIsNotConstructed = errors.New(
	"ReconcileCouriersCommand must be created via NewReconcileCouriersCommand constructor",
)

// ReconcileCouriersCommand triggers a sweep over the whole fleet,
// reverting over-capacity assignments back to the open pool. Normally
// reconciliation runs inline with courier updates; the sweep is a
// safety net run on a schedule.
type ReconcileCouriersCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileCouriersCommand creates a fleet reconciliation command.
func NewReconcileCouriersCommand() ReconcileCouriersCommand {
	return ReconcileCouriersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ReconcileCouriersCommand) Validate() error {
	return c.guard.Validate(ErrReconcileCouriersCommandIsNotConstructed)
}
