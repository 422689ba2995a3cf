package commands

import (
	"errors"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/pkg/guard"
)

var ErrProvisionSupplierKeysCommandIsNotConstructed = errors.New(
	"ProvisionSupplierKeysCommand must be created via NewProvisionSupplierKeysCommand constructor",
)

// ProvisionSupplierKeysCommand represents activating a supplier profile with
// a fresh signing key pair.
type ProvisionSupplierKeysCommand struct { //nolint:recvcheck //using for validation
	supplierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewProvisionSupplierKeysCommand creates a command to provision supplier keys.
func NewProvisionSupplierKeysCommand(supplierID kernel.UUID) (ProvisionSupplierKeysCommand, error) {
	keysCommand := ProvisionSupplierKeysCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := keysCommand.setSupplierID(supplierID); err != nil {
		return ProvisionSupplierKeysCommand{}, err
	}

	return keysCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ProvisionSupplierKeysCommand) Validate() error {
	return c.guard.Validate(ErrProvisionSupplierKeysCommandIsNotConstructed)
}

// SupplierID returns the identifier of the supplier being provisioned.
func (c ProvisionSupplierKeysCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

func (c *ProvisionSupplierKeysCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}

	c.supplierID = supplierID
	return nil
}
