package commands

import (
	"context"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/core/domain/model/outbox"
	"supplytrace/internal/pkg/cryptoutils"
)

// KeyDeliveryTopic is the Kafka topic carrying one-time private key delivery
// messages for the mailer.
const KeyDeliveryTopic = "supplytrace.key-delivery"

// keyDeliveryPayload is the JSON body of a key delivery message. It carries
// the private key exactly once; the server keeps only the digest.
type keyDeliveryPayload struct {
	SupplierID   string `json:"supplierId"`
	UserID       string `json:"userId"`
	BusinessName string `json:"businessName"`
	PrivateKey   string `json:"privateKey"`
}

// ProvisionSupplierKeysCommandHandler handles supplier key provisioning.
//
// A fresh RSA key pair is generated per supplier. The public key and the
// SHA-256 digest of the canonical private key are stored; the private key
// itself is handed to the supplier through a key delivery message and then
// discarded. Provisioning is one-shot: re-running for a supplier that
// already has keys fails.
type ProvisionSupplierKeysCommandHandler struct {
	uowFactory KeysUoWFactory
}

// NewProvisionSupplierKeysCommandHandler creates a handler for key provisioning.
func NewProvisionSupplierKeysCommandHandler(uowFactory KeysUoWFactory) ProvisionSupplierKeysCommandHandler {
	return ProvisionSupplierKeysCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the key provisioning command and returns the private key
// PEM for the one-time response to the caller.
func (h *ProvisionSupplierKeysCommandHandler) Handle(ctx context.Context, cmd ProvisionSupplierKeysCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	provisioned, err := uow.SupplierRepository().Get(ctx, cmd.SupplierID())
	if err != nil {
		return "", err
	}

	publicKey, privateKey, err := cryptoutils.GenerateKeyPair()
	if err != nil {
		return "", err
	}

	if err = provisioned.ProvisionKeys(publicKey, cryptoutils.HashPrivateKey(privateKey)); err != nil {
		return "", err
	}
	if err = uow.SupplierRepository().Update(ctx, provisioned); err != nil {
		return "", err
	}

	message, err := outbox.NewMessage(kernel.NewUUID(), KeyDeliveryTopic, provisioned.ID().String(), keyDeliveryPayload{
		SupplierID:   provisioned.ID().String(),
		UserID:       provisioned.UserID().String(),
		BusinessName: provisioned.BusinessName(),
		PrivateKey:   privateKey,
	})
	if err != nil {
		return "", err
	}
	if err = uow.OutboxRepository().Add(ctx, message); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return privateKey, nil
}
