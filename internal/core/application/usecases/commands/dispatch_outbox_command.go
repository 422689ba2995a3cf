package commands

import (
	"errors"

	"supplytrace/internal/pkg/guard"
)

var ErrDispatchOutboxCommandIsNotConstructed = errors.New(
	"DispatchOutboxCommand must be created via NewDispatchOutboxCommand constructor",
)

// DispatchOutboxCommand triggers a publishing sweep over the notification
// outbox. Messages written by state-changing commands stay in the outbox
// table until this sweep delivers them to the broker.
type DispatchOutboxCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchOutboxCommand creates a new command to trigger outbox dispatching.
// This is a parameterless command that initiates one publishing sweep.
func NewDispatchOutboxCommand() DispatchOutboxCommand {
	return DispatchOutboxCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchOutboxCommandIsNotConstructed if validation fails.
func (c *DispatchOutboxCommand) Validate() error {
	return c.guard.Validate(
		ErrDispatchOutboxCommandIsNotConstructed,
	)
}
