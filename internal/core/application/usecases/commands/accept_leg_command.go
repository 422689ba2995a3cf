package commands

import (
	"errors"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/pkg/guard"
)

var ErrAcceptLegCommandIsNotConstructed = errors.New(
	"AcceptLegCommand must be created via NewAcceptLegCommand constructor",
)

// AcceptLegCommand represents a recipient distributor agreeing to receive a
// custody hop addressed to it.
type AcceptLegCommand struct { //nolint:recvcheck //using for validation
	legID         kernel.UUID
	distributorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptLegCommand creates a command to accept a pending custody hop.
func NewAcceptLegCommand(legID, distributorID kernel.UUID) (AcceptLegCommand, error) {
	acceptCommand := AcceptLegCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		acceptCommand.setLegID(legID),
		acceptCommand.setDistributorID(distributorID),
	); err != nil {
		return AcceptLegCommand{}, err
	}

	return acceptCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptLegCommand) Validate() error {
	return c.guard.Validate(ErrAcceptLegCommandIsNotConstructed)
}

// LegID returns the identifier of the hop being accepted.
func (c AcceptLegCommand) LegID() kernel.UUID {
	return c.legID
}

// DistributorID returns the accepting distributor's identifier.
func (c AcceptLegCommand) DistributorID() kernel.UUID {
	return c.distributorID
}

func (c *AcceptLegCommand) setLegID(legID kernel.UUID) error {
	if err := legID.Validate(); err != nil {
		return err
	}

	c.legID = legID
	return nil
}

func (c *AcceptLegCommand) setDistributorID(distributorID kernel.UUID) error {
	if err := distributorID.Validate(); err != nil {
		return err
	}

	c.distributorID = distributorID
	return nil
}
