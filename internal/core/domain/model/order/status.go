package order

import (
	"supplytrace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──┬──> Approved ──┬──> InProgress ──> Delivered
//	          │       │  ^    │
//	          │       v  │    │
//	          │  PendingReassign
//	          │
//	          └──> Cancelled (also reachable from any pre-shipment state)
//
// Approved moves to PendingReassign when the first leg is rejected by its
// distributor, and back to Approved when the supplier reassigns. Cancelled
// and Delivered are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a customer places an order.
	// Orders in this status are waiting for the supplier's decision.
	Pending

	// Approved indicates the supplier approved and signed the order.
	// Stock is reserved and the first custody leg exists.
	Approved

	// PendingReassign indicates the first leg was rejected by its
	// distributor and the supplier must pick a different one.
	PendingReassign

	// InProgress indicates the first leg has shipped and the package is
	// moving through the custody chain.
	InProgress

	// Delivered indicates the customer received the package. Terminal.
	Delivered

	// Cancelled indicates the order was rejected by the supplier or
	// cancelled by the customer before shipment. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "UNKNOWN",
		Pending:         "PENDING",
		Approved:        "APPROVED",
		PendingReassign: "PENDING_REASSIGN",
		InProgress:      "IN_PROGRESS",
		Delivered:       "DELIVERED",
		Cancelled:       "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:         "PENDING",
		Approved:        "APPROVED",
		PendingReassign: "PENDING_REASSIGN",
		InProgress:      "IN_PROGRESS",
		Delivered:       "DELIVERED",
		Cancelled:       "CANCELLED",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status is invalid")
	}
	return nil
}

// String returns the wire-level name of the status, e.g. "PENDING_REASSIGN".
// This form is persisted and appears in state-transition error messages.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Approve transitions the status to Approved.
// Only a Pending order can be approved.
func (s Status) Approve() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("approve order", s.String())
	}
	return Approved, nil
}

// Reject transitions the status to Cancelled on supplier rejection.
// Only a Pending order can be rejected; no stock was reserved yet.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("reject order", s.String())
	}
	return Cancelled, nil
}

// Cancel transitions the status to Cancelled on customer cancellation.
// Terminal statuses cannot be cancelled; whether shipment has already begun
// is a separate check against the order's legs.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() {
		return 0, errs.NewInvalidStateError("cancel order", s.String())
	}
	return Cancelled, nil
}

// MarkReassignPending transitions Approved to PendingReassign when the first
// leg is rejected by its distributor.
func (s Status) MarkReassignPending() (Status, error) {
	if s != Approved {
		return 0, errs.NewInvalidStateError("mark order for reassignment", s.String())
	}
	return PendingReassign, nil
}

// Reassign transitions the status back to Approved after the supplier picks
// a new distributor. Valid from Approved and PendingReassign.
func (s Status) Reassign() (Status, error) {
	if s != Approved && s != PendingReassign {
		return 0, errs.NewInvalidStateError("reassign order", s.String())
	}
	return Approved, nil
}

// StartTransit transitions Approved to InProgress when the first leg ships.
func (s Status) StartTransit() (Status, error) {
	if s != Approved {
		return 0, errs.NewInvalidStateError("ship order", s.String())
	}
	return InProgress, nil
}

// Deliver transitions InProgress to Delivered on the customer's explicit
// delivery confirmation.
func (s Status) Deliver() (Status, error) {
	if s != InProgress {
		return 0, errs.NewInvalidStateError("confirm delivery", s.String())
	}
	return Delivered, nil
}

// FinalizeDelivered transitions any non-cancelled status to Delivered.
// Used when a successful package verification stands in for an explicit
// delivery confirmation.
func (s Status) FinalizeDelivered() (Status, error) {
	if s == Cancelled {
		return 0, errs.NewInvalidStateError("finalize delivery", s.String())
	}
	return Delivered, nil
}
