package order

import (
	"errors"
	"time"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/pkg/errs"
)

// Signature is the value object carrying the chain-of-custody signature
// material produced once, at approval time: the deterministic order hash,
// the supplier's signature over that hash, the server's signature over the
// supplier signature, the QR token embedding both, and the signing instant.
//
// The fields are all-or-nothing: an order either has a complete Signature or
// none at all. The constructor enforces this, so a half-populated signature
// can never be attached to an order.
type Signature struct {
	orderHash         string
	supplierSignature string
	serverSignature   string
	qrToken           string
	signedAt          time.Time

	guard kernel.ConstructorGuard
}

// ErrSignatureIsNotConstructed is returned when a Signature was not created
// through NewSignature.
var ErrSignatureIsNotConstructed = errors.New("Signature must be created via NewSignature constructor")

// NewSignature creates a complete signature bundle. Every field is required.
func NewSignature(orderHash, supplierSignature, serverSignature, qrToken string, signedAt time.Time) (Signature, error) {
	switch {
	case orderHash == "":
		return Signature{}, errs.NewValueIsRequiredError("orderHash")
	case supplierSignature == "":
		return Signature{}, errs.NewValueIsRequiredError("supplierSignature")
	case serverSignature == "":
		return Signature{}, errs.NewValueIsRequiredError("serverSignature")
	case qrToken == "":
		return Signature{}, errs.NewValueIsRequiredError("qrToken")
	case signedAt.IsZero():
		return Signature{}, errs.NewValueIsRequiredError("signedAt")
	}

	return Signature{
		orderHash:         orderHash,
		supplierSignature: supplierSignature,
		serverSignature:   serverSignature,
		qrToken:           qrToken,
		signedAt:          signedAt,
		guard:             kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Signature was created via NewSignature.
func (s Signature) Validate() error {
	return s.guard.Validate(ErrSignatureIsNotConstructed)
}

// OrderHash returns the deterministic digest over the signed order fields.
func (s Signature) OrderHash() string {
	return s.orderHash
}

// SupplierSignature returns the supplier's signature over the order hash.
func (s Signature) SupplierSignature() string {
	return s.supplierSignature
}

// ServerSignature returns the server's signature over the supplier signature.
func (s Signature) ServerSignature() string {
	return s.serverSignature
}

// QRToken returns the URL-safe token embedding both signatures.
func (s Signature) QRToken() string {
	return s.qrToken
}

// SignedAt returns the signing instant.
func (s Signature) SignedAt() time.Time {
	return s.signedAt
}
