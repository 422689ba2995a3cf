package commands

import (
	"errors"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/pkg/guard"
)

var ErrShipOrderCommandIsNotConstructed = errors.New(
	"ShipOrderCommand must be created via NewShipOrderCommand constructor",
)

// ShipOrderCommand represents a supplier handing the package to the first
// hop's transporter after the distributor accepted it.
type ShipOrderCommand struct { //nolint:recvcheck //using for validation
	legID      kernel.UUID
	supplierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewShipOrderCommand creates a command to ship the first custody hop.
func NewShipOrderCommand(legID, supplierID kernel.UUID) (ShipOrderCommand, error) {
	shipCommand := ShipOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipCommand.setLegID(legID),
		shipCommand.setSupplierID(supplierID),
	); err != nil {
		return ShipOrderCommand{}, err
	}

	return shipCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

// LegID returns the identifier of the hop being shipped.
func (c ShipOrderCommand) LegID() kernel.UUID {
	return c.legID
}

// SupplierID returns the shipping supplier's identifier.
func (c ShipOrderCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

func (c *ShipOrderCommand) setLegID(legID kernel.UUID) error {
	if err := legID.Validate(); err != nil {
		return err
	}

	c.legID = legID
	return nil
}

func (c *ShipOrderCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}

	c.supplierID = supplierID
	return nil
}
