package commands

import (
	"errors"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/pkg/guard"
)

var ErrRejectLegCommandIsNotConstructed = errors.New(
	"RejectLegCommand must be created via NewRejectLegCommand constructor",
)

// RejectLegCommand represents a recipient distributor refusing a custody hop
// addressed to it.
type RejectLegCommand struct { //nolint:recvcheck //using for validation
	legID         kernel.UUID
	distributorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectLegCommand creates a command to reject a pending custody hop.
func NewRejectLegCommand(legID, distributorID kernel.UUID) (RejectLegCommand, error) {
	rejectCommand := RejectLegCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rejectCommand.setLegID(legID),
		rejectCommand.setDistributorID(distributorID),
	); err != nil {
		return RejectLegCommand{}, err
	}

	return rejectCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectLegCommand) Validate() error {
	return c.guard.Validate(ErrRejectLegCommandIsNotConstructed)
}

// LegID returns the identifier of the hop being rejected.
func (c RejectLegCommand) LegID() kernel.UUID {
	return c.legID
}

// DistributorID returns the rejecting distributor's identifier.
func (c RejectLegCommand) DistributorID() kernel.UUID {
	return c.distributorID
}

func (c *RejectLegCommand) setLegID(legID kernel.UUID) error {
	if err := legID.Validate(); err != nil {
		return err
	}

	c.legID = legID
	return nil
}

func (c *RejectLegCommand) setDistributorID(distributorID kernel.UUID) error {
	if err := distributorID.Validate(); err != nil {
		return err
	}

	c.distributorID = distributorID
	return nil
}
