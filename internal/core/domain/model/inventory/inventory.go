// Package inventory contains the Inventory aggregate: warehouse stock of a
// single product. Stock is reserved when an order is approved and released
// back when an approved order is cancelled, always inside the same database
// transaction as the order change.
package inventory

import (
	"errors"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/pkg/errs"
)

// ErrInventoryIsNotConstructed is returned when an Inventory instance was not
// created through the NewInventory or RestoreInventory factory methods.
var ErrInventoryIsNotConstructed = errors.New("Inventory must be created via NewInventory constructor")

// Inventory represents the stock of one product in one warehouse.
//
// Inventory follows these invariants:
//   - Quantity is never negative
//   - Reserve fails rather than oversell when stock is short
//   - Can only be created through NewInventory or RestoreInventory
type Inventory struct {
	id          kernel.UUID
	warehouseID kernel.UUID
	productID   kernel.UUID
	quantity    int

	isConstructed bool
}

// NewInventory creates a new stock record.
func NewInventory(
	id kernel.UUID,
	warehouseID kernel.UUID,
	productID kernel.UUID,
	quantity int,
) (*Inventory, error) {
	inv := &Inventory{
		isConstructed: true,
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setWarehouseID(warehouseID),
		inv.setProductID(productID),
		inv.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return inv, nil
}

// RestoreInventory reconstructs an Inventory from persisted state.
func RestoreInventory(
	id kernel.UUID,
	warehouseID kernel.UUID,
	productID kernel.UUID,
	quantity int,
) (*Inventory, error) {
	return NewInventory(id, warehouseID, productID, quantity)
}

// Validate ensures the Inventory instance was properly constructed.
func (i *Inventory) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInventoryIsNotConstructed
	}
	return nil
}

// ID returns the stock record's unique identifier.
func (i *Inventory) ID() kernel.UUID {
	return i.id
}

// WarehouseID returns the identifier of the holding warehouse.
func (i *Inventory) WarehouseID() kernel.UUID {
	return i.warehouseID
}

// ProductID returns the identifier of the stocked product.
func (i *Inventory) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the units currently on hand.
func (i *Inventory) Quantity() int {
	return i.quantity
}

// CanFulfill reports whether the requested quantity is in stock.
func (i *Inventory) CanFulfill(requested int) bool {
	return requested > 0 && requested <= i.quantity
}

// Reserve decrements stock for an approved order. Returns
// InsufficientStockError when fewer units are on hand than requested.
func (i *Inventory) Reserve(requested int) error {
	if requested <= 0 {
		return errs.NewValueIsInvalidError("requested quantity must be positive")
	}
	if requested > i.quantity {
		return errs.NewInsufficientStockError(i.quantity, requested)
	}
	i.quantity -= requested
	return nil
}

// Release returns previously reserved stock when an approved order is
// cancelled.
func (i *Inventory) Release(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("released quantity must be positive")
	}
	i.quantity += quantity
	return nil
}

func (i *Inventory) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Inventory) setWarehouseID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.warehouseID = id
	return nil
}

func (i *Inventory) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.productID = id
	return nil
}

func (i *Inventory) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("quantity must not be negative")
	}
	i.quantity = quantity
	return nil
}
