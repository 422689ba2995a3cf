package order

import (
	"errors"
	"fmt"
	"time"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderAlreadySigned is returned when a signature is attached to an
	// order that already carries one. Signatures are issued exactly once.
	ErrOrderAlreadySigned = errors.New("order already carries a signature")
)

// Order represents a customer purchase moving from a supplier through a chain
// of custodians to the customer. It is the aggregate root for the fulfillment
// lifecycle.
//
// Order follows these invariants:
//   - Must have valid customer, supplier and product identifiers
//   - Quantity must be positive; total amount must be a valid Money value
//   - The delivery address is required
//   - Signature fields are all nil or all set, populated exactly once at approval
//   - Status transitions follow the rules encoded in Status
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	supplierID      kernel.UUID
	productID       kernel.UUID
	quantity        int
	totalAmount     kernel.Money
	deliveryAddress string
	status          Status
	signature       *Signature
	orderDate       time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Pending status. This is the only way to
// create an order for a fresh purchase; persistence reconstruction goes
// through RestoreOrder.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	supplierID kernel.UUID,
	productID kernel.UUID,
	quantity int,
	totalAmount kernel.Money,
	deliveryAddress string,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		orderDate:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setSupplierID(supplierID),
		o.setProductID(productID),
		o.setQuantity(quantity),
		o.setTotalAmount(totalAmount),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state. The signature may
// be nil for orders that were never approved.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	supplierID kernel.UUID,
	productID kernel.UUID,
	quantity int,
	totalAmount kernel.Money,
	deliveryAddress string,
	status Status,
	signature *Signature,
	orderDate time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if signature != nil {
		if err := signature.Validate(); err != nil {
			return nil, err
		}
	}

	o := &Order{
		status:        status,
		signature:     signature,
		orderDate:     orderDate,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setSupplierID(supplierID),
		o.setProductID(productID),
		o.setQuantity(quantity),
		o.setTotalAmount(totalAmount),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the ordering customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// SupplierID returns the identifier of the supplier profile.
func (o *Order) SupplierID() kernel.UUID {
	return o.supplierID
}

// ProductID returns the ordered product's identifier.
func (o *Order) ProductID() kernel.UUID {
	return o.productID
}

// Quantity returns the ordered quantity.
func (o *Order) Quantity() int {
	return o.quantity
}

// TotalAmount returns the order total (unit price times quantity).
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// DeliveryAddress returns the customer's delivery address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Signature returns the chain-of-custody signature bundle, or nil for an
// order that was never approved.
func (o *Order) Signature() *Signature {
	return o.signature
}

// IsSigned reports whether the order carries a signature bundle.
func (o *Order) IsSigned() bool {
	return o.signature != nil
}

// OrderDate returns the instant the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Approve transitions the order to Approved and attaches its signature
// bundle. Both happen together: an approved order is always signed, and a
// signature is issued exactly once.
func (o *Order) Approve(signature Signature) error {
	if err := signature.Validate(); err != nil {
		return err
	}
	if o.signature != nil {
		return ErrOrderAlreadySigned
	}

	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.signature = &signature
	return nil
}

// Reject marks the order Cancelled on supplier rejection.
// Only valid while Pending; no stock was reserved, so none is released.
func (o *Order) Reject() error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Cancel marks the order Cancelled on customer cancellation.
// Whether shipment already began is checked by the caller against the legs.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// MarkReassignPending moves an Approved order to PendingReassign after its
// first leg was rejected.
func (o *Order) MarkReassignPending() error {
	newStatus, err := o.status.MarkReassignPending()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Reassign moves the order back to Approved after the supplier picked a new
// distributor for a rejected leg.
func (o *Order) Reassign() error {
	newStatus, err := o.status.Reassign()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// StartTransit moves an Approved order to InProgress when its first leg ships.
func (o *Order) StartTransit() error {
	newStatus, err := o.status.StartTransit()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// ConfirmDelivered marks the order Delivered on the customer's explicit
// confirmation.
func (o *Order) ConfirmDelivered() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// FinalizeDelivered marks the order Delivered after a successful package
// verification. Idempotent: finalizing an already delivered order is a no-op.
func (o *Order) FinalizeDelivered() error {
	if o.status == Delivered {
		return nil
	}
	newStatus, err := o.status.FinalizeDelivered()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setSupplierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.supplierID = id
	return nil
}

func (o *Order) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.productID = id
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setTotalAmount(totalAmount kernel.Money) error {
	if err := totalAmount.Validate(); err != nil {
		return err
	}
	o.totalAmount = totalAmount
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = deliveryAddress
	return nil
}
