package commands

import (
	"errors"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/pkg/guard"
)

var ErrConfirmReceiptCommandIsNotConstructed = errors.New(
	"ConfirmReceiptCommand must be created via NewConfirmReceiptCommand constructor",
)

// ConfirmReceiptCommand represents a recipient distributor confirming
// physical receipt of an in-transit package.
type ConfirmReceiptCommand struct { //nolint:recvcheck //using for validation
	legID         kernel.UUID
	distributorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmReceiptCommand creates a command to confirm receipt of a hop.
func NewConfirmReceiptCommand(legID, distributorID kernel.UUID) (ConfirmReceiptCommand, error) {
	receiptCommand := ConfirmReceiptCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		receiptCommand.setLegID(legID),
		receiptCommand.setDistributorID(distributorID),
	); err != nil {
		return ConfirmReceiptCommand{}, err
	}

	return receiptCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmReceiptCommand) Validate() error {
	return c.guard.Validate(ErrConfirmReceiptCommandIsNotConstructed)
}

// LegID returns the identifier of the hop being received.
func (c ConfirmReceiptCommand) LegID() kernel.UUID {
	return c.legID
}

// DistributorID returns the receiving distributor's identifier.
func (c ConfirmReceiptCommand) DistributorID() kernel.UUID {
	return c.distributorID
}

func (c *ConfirmReceiptCommand) setLegID(legID kernel.UUID) error {
	if err := legID.Validate(); err != nil {
		return err
	}

	c.legID = legID
	return nil
}

func (c *ConfirmReceiptCommand) setDistributorID(distributorID kernel.UUID) error {
	if err := distributorID.Validate(); err != nil {
		return err
	}

	c.distributorID = distributorID
	return nil
}
