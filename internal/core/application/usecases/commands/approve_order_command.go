package commands

import (
	"errors"
	"strings"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/pkg/guard"
)

var (
	ErrApproveOrderCommandIsNotConstructed = errors.New(
		"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
	)
	ErrPrivateKeyIsRequired = errors.New("privateKey is required")
)

// ApproveOrderCommand represents a supplier's decision to fulfill a pending
// order. The supplier presents its private key PEM to authenticate the
// approval and picks the first distributor and transporter for the custody
// chain. The key is used for one signing operation and never persisted.
type ApproveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	supplierID    kernel.UUID
	privateKey    string
	distributorID kernel.UUID
	transporterID kernel.UUID
	legID         kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveOrderCommand creates a command to approve and sign a pending order.
func NewApproveOrderCommand(
	orderID kernel.UUID,
	supplierID kernel.UUID,
	privateKey string,
	distributorID kernel.UUID,
	transporterID kernel.UUID,
	legID kernel.UUID,
) (ApproveOrderCommand, error) {
	approveCommand := ApproveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		approveCommand.setOrderID(orderID),
		approveCommand.setSupplierID(supplierID),
		approveCommand.setPrivateKey(privateKey),
		approveCommand.setDistributorID(distributorID),
		approveCommand.setTransporterID(transporterID),
		approveCommand.setLegID(legID),
	); err != nil {
		return ApproveOrderCommand{}, err
	}

	return approveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being approved.
func (c ApproveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SupplierID returns the approving supplier's identifier.
func (c ApproveOrderCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// PrivateKey returns the supplier's private key PEM presented for this
// approval.
func (c ApproveOrderCommand) PrivateKey() string {
	return c.privateKey
}

// DistributorID returns the first distributor chosen for the custody chain.
func (c ApproveOrderCommand) DistributorID() kernel.UUID {
	return c.distributorID
}

// TransporterID returns the carrier chosen for the first hop.
func (c ApproveOrderCommand) TransporterID() kernel.UUID {
	return c.transporterID
}

// LegID returns the unique identifier for the first custody hop.
func (c ApproveOrderCommand) LegID() kernel.UUID {
	return c.legID
}

func (c *ApproveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ApproveOrderCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}

	c.supplierID = supplierID
	return nil
}

func (c *ApproveOrderCommand) setPrivateKey(privateKey string) error {
	if strings.TrimSpace(privateKey) == "" {
		return ErrPrivateKeyIsRequired
	}

	c.privateKey = privateKey
	return nil
}

func (c *ApproveOrderCommand) setDistributorID(distributorID kernel.UUID) error {
	if err := distributorID.Validate(); err != nil {
		return err
	}

	c.distributorID = distributorID
	return nil
}

func (c *ApproveOrderCommand) setTransporterID(transporterID kernel.UUID) error {
	if err := transporterID.Validate(); err != nil {
		return err
	}

	c.transporterID = transporterID
	return nil
}

func (c *ApproveOrderCommand) setLegID(legID kernel.UUID) error {
	if err := legID.Validate(); err != nil {
		return err
	}

	c.legID = legID
	return nil
}
