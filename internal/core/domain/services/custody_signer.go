package services

import (
	"strconv"
	"strings"
	"time"

	"supplytrace/internal/core/domain/model/order"
	"supplytrace/internal/pkg/cryptoutils"
	"supplytrace/internal/pkg/qrtoken"
)

// CustodySigner is a domain service that produces the two-tier signature
// bundle attached to an order at approval.
//
// The chain binds two independent attestations to the same order:
//   - The supplier signs the order hash with its own private key,
//     attesting "I approved this exact order".
//   - The server counter-signs the supplier's signature with the server key,
//     attesting "this approval passed through this system".
//
// Verifying the chain therefore needs both public keys, and tampering with
// any order field, either signature or the token invalidates at least one
// link.
type CustodySigner struct{}

// NewCustodySigner creates a new CustodySigner instance.
func NewCustodySigner() CustodySigner {
	return CustodySigner{}
}

// ComputeOrderHash derives the deterministic hash of an order's identifying
// fields. Field order and formatting are fixed: any change would invalidate
// every signature already issued.
func (s CustodySigner) ComputeOrderHash(o *order.Order) (string, error) {
	if err := o.Validate(); err != nil {
		return "", err
	}

	payload := strings.Join([]string{
		o.ID().String(),
		o.ProductID().String(),
		strconv.Itoa(o.Quantity()),
		o.CustomerID().String(),
		o.SupplierID().String(),
		o.TotalAmount().CanonicalString(),
		o.DeliveryAddress(),
	}, "|")

	return cryptoutils.SHA256Hex(payload), nil
}

// Sign produces the full signature bundle for an order: order hash, supplier
// signature, server counter-signature and the encoded package token.
func (s CustodySigner) Sign(o *order.Order, supplierPrivateKeyPEM, serverPrivateKeyPEM string) (order.Signature, error) {
	orderHash, err := s.ComputeOrderHash(o)
	if err != nil {
		return order.Signature{}, err
	}

	supplierSignature, err := cryptoutils.Sign(orderHash, supplierPrivateKeyPEM)
	if err != nil {
		return order.Signature{}, err
	}

	serverSignature, err := cryptoutils.Sign(supplierSignature, serverPrivateKeyPEM)
	if err != nil {
		return order.Signature{}, err
	}

	token, err := qrtoken.Encode(o.ID().String(), supplierSignature, serverSignature)
	if err != nil {
		return order.Signature{}, err
	}

	return order.NewSignature(orderHash, supplierSignature, serverSignature, token, time.Now().UTC())
}

// VerifyChain checks both links of a signature chain against an order hash
// and the two public keys. It reports which link failed first: the supplier
// signature over the hash, then the server signature over the supplier
// signature.
func (s CustodySigner) VerifyChain(orderHash, supplierSignature, serverSignature, supplierPublicKeyPEM, serverPublicKeyPEM string) (supplierOK, serverOK bool) {
	supplierOK = cryptoutils.VerifySignature(orderHash, supplierSignature, supplierPublicKeyPEM)
	if !supplierOK {
		return false, false
	}
	serverOK = cryptoutils.VerifySignature(supplierSignature, serverSignature, serverPublicKeyPEM)
	return supplierOK, serverOK
}
