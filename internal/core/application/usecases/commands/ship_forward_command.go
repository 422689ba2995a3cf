package commands

import (
	"errors"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/pkg/guard"
)

var ErrShipForwardCommandIsNotConstructed = errors.New(
	"ShipForwardCommand must be created via NewShipForwardCommand constructor",
)

// ShipForwardCommand represents a distributor handing the package to the
// transporter of its own outgoing hop. Distributor-bound hops ship after
// acceptance; customer-bound hops ship immediately.
type ShipForwardCommand struct { //nolint:recvcheck //using for validation
	legID         kernel.UUID
	distributorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewShipForwardCommand creates a command to ship a forwarding hop.
func NewShipForwardCommand(legID, distributorID kernel.UUID) (ShipForwardCommand, error) {
	shipCommand := ShipForwardCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipCommand.setLegID(legID),
		shipCommand.setDistributorID(distributorID),
	); err != nil {
		return ShipForwardCommand{}, err
	}

	return shipCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipForwardCommand) Validate() error {
	return c.guard.Validate(ErrShipForwardCommandIsNotConstructed)
}

// LegID returns the identifier of the hop being shipped.
func (c ShipForwardCommand) LegID() kernel.UUID {
	return c.legID
}

// DistributorID returns the shipping distributor's identifier.
func (c ShipForwardCommand) DistributorID() kernel.UUID {
	return c.distributorID
}

func (c *ShipForwardCommand) setLegID(legID kernel.UUID) error {
	if err := legID.Validate(); err != nil {
		return err
	}

	c.legID = legID
	return nil
}

func (c *ShipForwardCommand) setDistributorID(distributorID kernel.UUID) error {
	if err := distributorID.Validate(); err != nil {
		return err
	}

	c.distributorID = distributorID
	return nil
}
