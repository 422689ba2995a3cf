package commands

import (
	"context"
	"errors"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/core/domain/model/order"
	"supplytrace/internal/core/domain/model/tracking"
	"supplytrace/internal/core/domain/services"
	"supplytrace/internal/pkg/errs"
	"supplytrace/internal/pkg/qrtoken"
)

// Verification failure codes. A failed verification is a business outcome,
// not an error: the handler reports it in the result and the transaction is
// rolled back without side effects.
const (
	VerificationInvalidToken            = "INVALID_TOKEN"
	VerificationOrderNotFound           = "ORDER_NOT_FOUND"
	VerificationNotYourOrder            = "NOT_YOUR_ORDER"
	VerificationNotSigned               = "NOT_SIGNED"
	VerificationNoPublicKey             = "NO_PUBLIC_KEY"
	VerificationSupplierSignatureBroken = "SUPPLIER_SIGNATURE_INVALID"
	VerificationServerSignatureBroken   = "SERVER_SIGNATURE_INVALID"
	VerificationSignatureMismatch       = "SIGNATURE_MISMATCH"
)

// VerificationResult is the outcome of a package token scan.
type VerificationResult struct {
	// Valid reports whether every link of the custody chain checked out.
	Valid bool

	// Code identifies the first failed check, empty when Valid.
	Code string

	// Message is the human-readable explanation of the outcome.
	Message string

	// OrderID is the verified order's identifier, empty when the token never
	// resolved to an order.
	OrderID string
}

func failedVerification(code, message string) *VerificationResult {
	return &VerificationResult{Code: code, Message: message}
}

// VerifyTokenCommandHandler runs the full custody verification of a scanned
// package token.
//
// Checks run in order and stop at the first failure: token decoding, order
// resolution, customer scoping, signature presence, key availability,
// signature equality against the stored bundle, then both cryptographic
// links of the chain against a hash recomputed from the order's current
// fields, which catches tampering with the order fields themselves.
//
// A fully valid scan finalizes delivery: the final hop and the order are
// marked Delivered. Finalization is idempotent, so scanning twice reports
// the same result without further state changes.
type VerifyTokenCommandHandler struct {
	uowFactory      VerifyUoWFactory
	signer          services.CustodySigner
	serverPublicKey string
}

// NewVerifyTokenCommandHandler creates a handler for package verification.
// The server public key PEM checks the counter-signature link.
func NewVerifyTokenCommandHandler(
	uowFactory VerifyUoWFactory,
	signer services.CustodySigner,
	serverPublicKey string,
) VerifyTokenCommandHandler {
	return VerifyTokenCommandHandler{
		uowFactory:      uowFactory,
		signer:          signer,
		serverPublicKey: serverPublicKey,
	}
}

// Handle processes the verification command. The returned error covers
// infrastructure failures only; verification failures come back inside the
// result with a nil error.
func (h *VerifyTokenCommandHandler) Handle(ctx context.Context, cmd VerifyTokenCommand) (*VerificationResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	payload := qrtoken.Decode(cmd.Token())
	if payload == nil {
		return failedVerification(VerificationInvalidToken, "token is malformed or incomplete"), nil
	}

	orderID, err := kernel.UUIDFromString(payload.OrderID)
	if err != nil {
		return failedVerification(VerificationInvalidToken, "token carries an invalid order identifier"), nil
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	verifiedOrder, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return failedVerification(VerificationOrderNotFound, "no order matches this token"), nil
		}
		return nil, err
	}

	if !verifiedOrder.CustomerID().IsEqual(cmd.CustomerID()) {
		return failedVerification(VerificationNotYourOrder, "order belongs to a different customer"), nil
	}

	signature := verifiedOrder.Signature()
	if signature == nil {
		return failedVerification(VerificationNotSigned, "order was never signed"), nil
	}

	seller, err := uow.SupplierRepository().Get(ctx, verifiedOrder.SupplierID())
	if err != nil {
		return nil, err
	}
	if seller.PublicKey() == "" {
		return failedVerification(VerificationNoPublicKey, "supplier has no public key on record"), nil
	}

	if payload.SupplierSignature != signature.SupplierSignature() ||
		payload.ServerSignature != signature.ServerSignature() {
		return failedVerification(VerificationSignatureMismatch, "token signatures do not match the stored bundle"), nil
	}

	// The hash is recomputed from the order's current fields rather than
	// taken from the stored bundle, so tampering with any signed field
	// breaks the supplier link.
	recomputedHash, err := h.signer.ComputeOrderHash(verifiedOrder)
	if err != nil {
		return nil, err
	}

	supplierOK, serverOK := h.signer.VerifyChain(
		recomputedHash,
		signature.SupplierSignature(),
		signature.ServerSignature(),
		seller.PublicKey(),
		h.serverPublicKey,
	)
	if !supplierOK {
		return failedVerification(VerificationSupplierSignatureBroken, "supplier signature does not verify"), nil
	}
	if !serverOK {
		return failedVerification(VerificationServerSignatureBroken, "server signature does not verify"), nil
	}

	alreadyDelivered := verifiedOrder.Status() == order.Delivered

	finalLeg, err := uow.LegRepository().GetLastByOrder(ctx, verifiedOrder.ID())
	if err != nil {
		return nil, err
	}
	if err = finalLeg.FinalizeDelivered(); err != nil {
		return nil, err
	}
	if err = uow.LegRepository().Update(ctx, finalLeg); err != nil {
		return nil, err
	}

	if err = verifiedOrder.FinalizeDelivered(); err != nil {
		return nil, err
	}
	if err = uow.OrderRepository().Update(ctx, verifiedOrder); err != nil {
		return nil, err
	}

	if !alreadyDelivered {
		legID := finalLeg.ID()
		if err = recordTrail(ctx, uow, verifiedOrder.ID(), &legID, tracking.EventPackageVerified, "package verified and delivery finalized"); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return &VerificationResult{
		Valid:   true,
		Message: "chain of custody verified",
		OrderID: verifiedOrder.ID().String(),
	}, nil
}
