package leg

import (
	"errors"
	"time"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/pkg/errs"
)

var (
	// ErrLegIsNotConstructed is returned when a Leg instance was not created through
	// the NewSupplierLeg, NewDistributorLeg or RestoreLeg factory methods.
	ErrLegIsNotConstructed = errors.New("Leg must be created via NewSupplierLeg or NewDistributorLeg constructor")
)

// Leg represents a single custody hop of an order: one sender handing the
// package to one recipient via a transporter of the sender's choosing.
//
// Leg follows these invariants:
//   - Belongs to exactly one order; leg numbers within an order start at 1
//     and strictly increase
//   - Exactly one sender identifier is set, matching the sender's party type
//   - A distributor recipient identifier is set iff the hop is distributor-bound
//   - Status transitions follow the rules encoded in Status
//   - Can only be created through its factory methods
type Leg struct {
	id                kernel.UUID
	orderID           kernel.UUID
	legNumber         int
	fromType          PartyType
	fromSupplierID    *kernel.UUID
	fromDistributorID *kernel.UUID
	toType            PartyType
	toDistributorID   *kernel.UUID
	transporterID     kernel.UUID
	status            Status
	createdAt         time.Time

	isConstructed bool
}

// NewSupplierLeg creates the first hop of an order: supplier to distributor,
// in Pending status.
func NewSupplierLeg(
	id kernel.UUID,
	orderID kernel.UUID,
	legNumber int,
	fromSupplierID kernel.UUID,
	toDistributorID kernel.UUID,
	transporterID kernel.UUID,
) (*Leg, error) {
	l := &Leg{
		fromType:      PartySupplier,
		toType:        PartyDistributor,
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setOrderID(orderID),
		l.setLegNumber(legNumber),
		l.setFromSupplierID(fromSupplierID),
		l.setRecipient(PartyDistributor, &toDistributorID),
		l.setTransporterID(transporterID),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// NewDistributorLeg creates a forwarding hop: distributor to the next
// distributor, or distributor to the customer. A customer-bound hop carries
// no recipient identifier because the customer is fixed by the order itself.
func NewDistributorLeg(
	id kernel.UUID,
	orderID kernel.UUID,
	legNumber int,
	fromDistributorID kernel.UUID,
	toType PartyType,
	toDistributorID *kernel.UUID,
	transporterID kernel.UUID,
) (*Leg, error) {
	if err := toType.ValidateAsRecipient(); err != nil {
		return nil, err
	}

	l := &Leg{
		fromType:      PartyDistributor,
		toType:        toType,
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setOrderID(orderID),
		l.setLegNumber(legNumber),
		l.setFromDistributorID(fromDistributorID),
		l.setRecipient(toType, toDistributorID),
		l.setTransporterID(transporterID),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLeg reconstructs a Leg from persisted state.
func RestoreLeg(
	id kernel.UUID,
	orderID kernel.UUID,
	legNumber int,
	fromType PartyType,
	fromSupplierID *kernel.UUID,
	fromDistributorID *kernel.UUID,
	toType PartyType,
	toDistributorID *kernel.UUID,
	transporterID kernel.UUID,
	status Status,
	createdAt time.Time,
) (*Leg, error) {
	if err := errors.Join(
		fromType.ValidateAsSender(),
		toType.ValidateAsRecipient(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	l := &Leg{
		fromType:      fromType,
		toType:        toType,
		status:        status,
		createdAt:     createdAt,
		isConstructed: true,
	}

	var senderErr error
	switch fromType {
	case PartySupplier:
		if fromSupplierID == nil || fromDistributorID != nil {
			senderErr = errs.NewValueIsInvalidError("supplier leg must carry exactly the supplier sender identifier")
		} else {
			senderErr = l.setFromSupplierID(*fromSupplierID)
		}
	case PartyDistributor:
		if fromDistributorID == nil || fromSupplierID != nil {
			senderErr = errs.NewValueIsInvalidError("distributor leg must carry exactly the distributor sender identifier")
		} else {
			senderErr = l.setFromDistributorID(*fromDistributorID)
		}
	}

	if err := errors.Join(
		l.setID(id),
		l.setOrderID(orderID),
		l.setLegNumber(legNumber),
		senderErr,
		l.setRecipient(toType, toDistributorID),
		l.setTransporterID(transporterID),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// Validate ensures the Leg instance was properly constructed.
func (l *Leg) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLegIsNotConstructed
	}
	return nil
}

// IsEqual compares two legs by their unique identifiers.
func (l *Leg) IsEqual(other *Leg) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the leg's unique identifier.
func (l *Leg) ID() kernel.UUID {
	return l.id
}

// OrderID returns the identifier of the order this hop belongs to.
func (l *Leg) OrderID() kernel.UUID {
	return l.orderID
}

// LegNumber returns the 1-based position of this hop within its order.
func (l *Leg) LegNumber() int {
	return l.legNumber
}

// FromType returns the party type of the sender.
func (l *Leg) FromType() PartyType {
	return l.fromType
}

// FromSupplierID returns the sending supplier's identifier, or nil for a
// distributor-originated hop.
func (l *Leg) FromSupplierID() *kernel.UUID {
	return l.fromSupplierID
}

// FromDistributorID returns the sending distributor's identifier, or nil for
// the supplier-originated first hop.
func (l *Leg) FromDistributorID() *kernel.UUID {
	return l.fromDistributorID
}

// ToType returns the party type of the recipient.
func (l *Leg) ToType() PartyType {
	return l.toType
}

// ToDistributorID returns the receiving distributor's identifier, or nil for
// a customer-bound hop.
func (l *Leg) ToDistributorID() *kernel.UUID {
	return l.toDistributorID
}

// TransporterID returns the identifier of the transporter carrying this hop.
func (l *Leg) TransporterID() kernel.UUID {
	return l.transporterID
}

// Status returns the current status of the leg.
func (l *Leg) Status() Status {
	return l.status
}

// IsCustomerBound reports whether this hop delivers to the customer.
func (l *Leg) IsCustomerBound() bool {
	return l.toType == PartyCustomer
}

// IsFirst reports whether this is the originating supplier hop.
func (l *Leg) IsFirst() bool {
	return l.legNumber == 1
}

// CreatedAt returns the instant the hop was created.
func (l *Leg) CreatedAt() time.Time {
	return l.createdAt
}

// IsSentBySupplier reports whether the given supplier originated this hop.
func (l *Leg) IsSentBySupplier(supplierID kernel.UUID) bool {
	return l.fromSupplierID != nil && l.fromSupplierID.IsEqual(supplierID)
}

// IsSentByDistributor reports whether the given distributor originated this hop.
func (l *Leg) IsSentByDistributor(distributorID kernel.UUID) bool {
	return l.fromDistributorID != nil && l.fromDistributorID.IsEqual(distributorID)
}

// IsAddressedToDistributor reports whether the given distributor is this
// hop's recipient.
func (l *Leg) IsAddressedToDistributor(distributorID kernel.UUID) bool {
	return l.toDistributorID != nil && l.toDistributorID.IsEqual(distributorID)
}

// Accept records the recipient distributor's agreement to receive the package.
func (l *Leg) Accept() error {
	newStatus, err := l.status.Accept()
	if err != nil {
		return err
	}
	l.status = newStatus
	return nil
}

// Reject records the recipient distributor's refusal of the package.
func (l *Leg) Reject() error {
	newStatus, err := l.status.Reject()
	if err != nil {
		return err
	}
	l.status = newStatus
	return nil
}

// Ship records that the sender handed the package to the transporter.
func (l *Leg) Ship() error {
	newStatus, err := l.status.Ship(l.IsCustomerBound())
	if err != nil {
		return err
	}
	l.status = newStatus
	return nil
}

// Deliver records the recipient's confirmation of physical receipt.
func (l *Leg) Deliver() error {
	newStatus, err := l.status.Deliver()
	if err != nil {
		return err
	}
	l.status = newStatus
	return nil
}

// FinalizeDelivered marks the hop Delivered after a successful package
// verification. Idempotent: finalizing an already delivered hop is a no-op.
func (l *Leg) FinalizeDelivered() error {
	if l.status == Delivered {
		return nil
	}
	newStatus, err := l.status.Ship(l.IsCustomerBound())
	if err == nil {
		l.status = newStatus
	}
	newStatus, err = l.status.Deliver()
	if err != nil {
		return err
	}
	l.status = newStatus
	return nil
}

// Void administratively rejects a hop that has not shipped yet, used when
// the order is cancelled.
func (l *Leg) Void() error {
	newStatus, err := l.status.Void()
	if err != nil {
		return err
	}
	l.status = newStatus
	return nil
}

func (l *Leg) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Leg) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.orderID = id
	return nil
}

func (l *Leg) setLegNumber(legNumber int) error {
	if legNumber < 1 {
		return errs.NewValueIsInvalidError("legNumber must be positive")
	}
	l.legNumber = legNumber
	return nil
}

func (l *Leg) setFromSupplierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.fromSupplierID = &id
	return nil
}

func (l *Leg) setFromDistributorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.fromDistributorID = &id
	return nil
}

func (l *Leg) setRecipient(toType PartyType, toDistributorID *kernel.UUID) error {
	switch toType {
	case PartyDistributor:
		if toDistributorID == nil {
			return errs.NewValueIsRequiredError("toDistributorID")
		}
		if err := toDistributorID.Validate(); err != nil {
			return err
		}
		id := *toDistributorID
		l.toDistributorID = &id
	case PartyCustomer:
		if toDistributorID != nil {
			return errs.NewValueIsInvalidError("customer-bound leg must not carry a distributor recipient")
		}
	default:
		return errs.NewValueIsInvalidError("toType must be DISTRIBUTOR or CUSTOMER")
	}
	return nil
}

func (l *Leg) setTransporterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.transporterID = id
	return nil
}
