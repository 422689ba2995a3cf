// Package transporter contains the Transporter aggregate: a carrier owned by
// exactly one supplier or one distributor and assigned to custody hops by its
// owner. A transporter with active hops cannot be deleted.
package transporter

import (
	"errors"
	"strings"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/pkg/errs"
)

// ErrTransporterIsNotConstructed is returned when a Transporter instance was not
// created through the NewSupplierTransporter, NewDistributorTransporter or
// RestoreTransporter factory methods.
var ErrTransporterIsNotConstructed = errors.New("Transporter must be created via its factory methods")

// Transporter represents a carrier in a sender's fleet.
//
// Transporter follows these invariants:
//   - Exactly one owner identifier is set: a supplier or a distributor
//   - Name is required
//   - Can only be created through its factory methods
type Transporter struct {
	id            kernel.UUID
	name          string
	vehicleNumber string
	supplierID    *kernel.UUID
	distributorID *kernel.UUID

	isConstructed bool
}

// NewSupplierTransporter creates a carrier owned by a supplier.
func NewSupplierTransporter(
	id kernel.UUID,
	name string,
	vehicleNumber string,
	supplierID kernel.UUID,
) (*Transporter, error) {
	t := &Transporter{
		vehicleNumber: vehicleNumber,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setSupplierID(supplierID),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// NewDistributorTransporter creates a carrier owned by a distributor.
func NewDistributorTransporter(
	id kernel.UUID,
	name string,
	vehicleNumber string,
	distributorID kernel.UUID,
) (*Transporter, error) {
	t := &Transporter{
		vehicleNumber: vehicleNumber,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setDistributorID(distributorID),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTransporter reconstructs a Transporter from persisted state.
func RestoreTransporter(
	id kernel.UUID,
	name string,
	vehicleNumber string,
	supplierID *kernel.UUID,
	distributorID *kernel.UUID,
) (*Transporter, error) {
	if (supplierID == nil) == (distributorID == nil) {
		return nil, errs.NewValueIsInvalidError("transporter must be owned by exactly one supplier or distributor")
	}
	if supplierID != nil {
		return NewSupplierTransporter(id, name, vehicleNumber, *supplierID)
	}
	return NewDistributorTransporter(id, name, vehicleNumber, *distributorID)
}

// Validate ensures the Transporter instance was properly constructed.
func (t *Transporter) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransporterIsNotConstructed
	}
	return nil
}

// ID returns the transporter's unique identifier.
func (t *Transporter) ID() kernel.UUID {
	return t.id
}

// Name returns the carrier's display name.
func (t *Transporter) Name() string {
	return t.name
}

// VehicleNumber returns the carrier's vehicle registration, possibly empty.
func (t *Transporter) VehicleNumber() string {
	return t.vehicleNumber
}

// SupplierID returns the owning supplier's identifier, or nil for a
// distributor-owned carrier.
func (t *Transporter) SupplierID() *kernel.UUID {
	return t.supplierID
}

// DistributorID returns the owning distributor's identifier, or nil for a
// supplier-owned carrier.
func (t *Transporter) DistributorID() *kernel.UUID {
	return t.distributorID
}

// IsOwnedBySupplier reports whether the given supplier owns this carrier.
func (t *Transporter) IsOwnedBySupplier(supplierID kernel.UUID) bool {
	return t.supplierID != nil && t.supplierID.IsEqual(supplierID)
}

// IsOwnedByDistributor reports whether the given distributor owns this carrier.
func (t *Transporter) IsOwnedByDistributor(distributorID kernel.UUID) bool {
	return t.distributorID != nil && t.distributorID.IsEqual(distributorID)
}

func (t *Transporter) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Transporter) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	t.name = name
	return nil
}

func (t *Transporter) setSupplierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.supplierID = &id
	return nil
}

func (t *Transporter) setDistributorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.distributorID = &id
	return nil
}
