// Package product contains the Product aggregate: a catalog item listed by
// a supplier. The unit price recorded here is the authoritative source for
// order totals.
package product

import (
	"errors"
	"strings"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not created
// through the NewProduct or RestoreProduct factory methods.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product represents a catalog item.
//
// Product follows these invariants:
//   - Belongs to exactly one supplier
//   - Name is required; unit price must be a valid Money value
//   - Can only be created through NewProduct or RestoreProduct
type Product struct {
	id         kernel.UUID
	supplierID kernel.UUID
	name       string
	category   string
	batchNo    string
	unitPrice  kernel.Money

	isConstructed bool
}

// NewProduct creates a new Product for a supplier's catalog.
func NewProduct(
	id kernel.UUID,
	supplierID kernel.UUID,
	name string,
	category string,
	batchNo string,
	unitPrice kernel.Money,
) (*Product, error) {
	p := &Product{
		category:      category,
		batchNo:       batchNo,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setSupplierID(supplierID),
		p.setName(name),
		p.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persisted state.
func RestoreProduct(
	id kernel.UUID,
	supplierID kernel.UUID,
	name string,
	category string,
	batchNo string,
	unitPrice kernel.Money,
) (*Product, error) {
	return NewProduct(id, supplierID, name, category, batchNo, unitPrice)
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// SupplierID returns the identifier of the listing supplier.
func (p *Product) SupplierID() kernel.UUID {
	return p.supplierID
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Category returns the product category, possibly empty.
func (p *Product) Category() string {
	return p.category
}

// BatchNo returns the production batch number, possibly empty.
func (p *Product) BatchNo() string {
	return p.batchNo
}

// UnitPrice returns the price of a single unit.
func (p *Product) UnitPrice() kernel.Money {
	return p.unitPrice
}

// TotalFor computes the order total for the given quantity from the
// authoritative unit price.
func (p *Product) TotalFor(quantity int) (kernel.Money, error) {
	return p.unitPrice.Multiply(quantity)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setSupplierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.supplierID = id
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setUnitPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.unitPrice = price
	return nil
}
