package leg

import (
	"supplytrace/internal/pkg/errs"
)

// Status represents the lifecycle state of a single custody hop.
//
// State transitions:
//
//	Pending ──┬──> Accepted ──> InTransit ──> Delivered
//	          │                     ^
//	          │─────────────────────┘ (customer-bound hops only)
//	          └──> Rejected
//
// Rejected and Delivered are terminal. A customer-bound hop may ship
// directly from Pending because a customer has no accept step.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending means the hop awaits the recipient's decision.
	Pending

	// Accepted means the recipient agreed to receive the package.
	Accepted

	// Rejected means the recipient declined, or the hop was voided when the
	// order was cancelled. Terminal.
	Rejected

	// InTransit means the sender shipped the package.
	InTransit

	// Delivered means the recipient confirmed receipt. Terminal.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Accepted:  "ACCEPTED",
		Rejected:  "REJECTED",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Accepted:  "ACCEPTED",
		Rejected:  "REJECTED",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("leg status is invalid")
	}
	return nil
}

// String returns the wire-level name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsActive reports whether the hop still holds or expects the package.
// Active hops block deletion of their transporter.
func (s Status) IsActive() bool {
	return s == Pending || s == Accepted || s == InTransit
}

// Accept transitions Pending to Accepted.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("accept leg", s.String())
	}
	return Accepted, nil
}

// Reject transitions Pending to Rejected.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("reject leg", s.String())
	}
	return Rejected, nil
}

// Ship transitions the hop to InTransit. Distributor-bound hops must be
// Accepted first; customer-bound hops may ship straight from Pending.
func (s Status) Ship(customerBound bool) (Status, error) {
	if s == Accepted || (customerBound && s == Pending) {
		return InTransit, nil
	}
	return 0, errs.NewInvalidStateError("ship leg", s.String())
}

// Deliver transitions InTransit to Delivered.
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return 0, errs.NewInvalidStateError("confirm receipt", s.String())
	}
	return Delivered, nil
}

// Void transitions Pending or Accepted to Rejected when the order is
// cancelled. This is an administrative rejection, not a custodian decision.
func (s Status) Void() (Status, error) {
	if s != Pending && s != Accepted {
		return 0, errs.NewInvalidStateError("void leg", s.String())
	}
	return Rejected, nil
}
