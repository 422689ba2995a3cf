// Package distributor contains the Distributor aggregate: an intermediate
// custodian that receives packages, forwards them to other distributors or
// ships the final hop to the customer.
package distributor

import (
	"errors"
	"strings"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/pkg/errs"
)

// ErrDistributorIsNotConstructed is returned when a Distributor instance was not
// created through the NewDistributor or RestoreDistributor factory methods.
var ErrDistributorIsNotConstructed = errors.New("Distributor must be created via NewDistributor constructor")

// Distributor represents an intermediate custodian profile.
type Distributor struct {
	id           kernel.UUID
	userID       kernel.UUID
	businessName string

	isConstructed bool
}

// NewDistributor creates a new Distributor.
func NewDistributor(
	id kernel.UUID,
	userID kernel.UUID,
	businessName string,
) (*Distributor, error) {
	d := &Distributor{
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setUserID(userID),
		d.setBusinessName(businessName),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDistributor reconstructs a Distributor from persisted state.
func RestoreDistributor(
	id kernel.UUID,
	userID kernel.UUID,
	businessName string,
) (*Distributor, error) {
	return NewDistributor(id, userID, businessName)
}

// Validate ensures the Distributor instance was properly constructed.
func (d *Distributor) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDistributorIsNotConstructed
	}
	return nil
}

// IsEqual compares two distributors by their unique identifiers.
func (d *Distributor) IsEqual(other *Distributor) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the distributor's unique identifier.
func (d *Distributor) ID() kernel.UUID {
	return d.id
}

// UserID returns the backing user account's identifier.
func (d *Distributor) UserID() kernel.UUID {
	return d.userID
}

// BusinessName returns the distributor's registered business name.
func (d *Distributor) BusinessName() string {
	return d.businessName
}

func (d *Distributor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Distributor) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.userID = id
	return nil
}

func (d *Distributor) setBusinessName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("businessName")
	}
	d.businessName = name
	return nil
}
