package services_test

import (
	"testing"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/core/domain/model/order"
	"supplytrace/internal/core/domain/services"
	"supplytrace/internal/pkg/cryptoutils"
	"supplytrace/internal/pkg/qrtoken"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cryptoKeyPair(t *testing.T) (publicKeyPEM, privateKeyPEM string) {
	t.Helper()
	pub, priv, err := cryptoutils.GenerateKeyPair()
	require.NoError(t, err)
	return pub, priv
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	amount, err := kernel.NewMoney(12500)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		5,
		amount,
		"12 Harbor Street",
	)
	require.NoError(t, err)
	return o
}

func TestCustodySigner_ComputeOrderHash(t *testing.T) {
	signer := services.NewCustodySigner()

	t.Run("deterministic", func(t *testing.T) {
		o := newTestOrder(t)

		first, err := signer.ComputeOrderHash(o)
		require.NoError(t, err)
		assert.Len(t, first, 64)

		second, err := signer.ComputeOrderHash(o)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("distinct orders hash differently", func(t *testing.T) {
		first, err := signer.ComputeOrderHash(newTestOrder(t))
		require.NoError(t, err)
		second, err := signer.ComputeOrderHash(newTestOrder(t))
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("unconstructed order", func(t *testing.T) {
		var o order.Order
		_, err := signer.ComputeOrderHash(&o)
		require.Error(t, err)
	})
}

func TestCustodySigner_SignAndVerifyChain(t *testing.T) {
	signer := services.NewCustodySigner()

	supplierPublicKey, supplierPrivateKey := cryptoKeyPair(t)
	serverPublicKey, serverPrivateKey := cryptoKeyPair(t)

	o := newTestOrder(t)

	signature, err := signer.Sign(o, supplierPrivateKey, serverPrivateKey)
	require.NoError(t, err)
	require.NoError(t, signature.Validate())

	expectedHash, err := signer.ComputeOrderHash(o)
	require.NoError(t, err)
	assert.Equal(t, expectedHash, signature.OrderHash())
	assert.False(t, signature.SignedAt().IsZero())

	t.Run("token carries both signature layers", func(t *testing.T) {
		payload := qrtoken.Decode(signature.QRToken())
		require.NotNil(t, payload)
		assert.Equal(t, o.ID().String(), payload.OrderID)
		assert.Equal(t, signature.SupplierSignature(), payload.SupplierSignature)
		assert.Equal(t, signature.ServerSignature(), payload.ServerSignature)
	})

	t.Run("valid chain", func(t *testing.T) {
		supplierOK, serverOK := signer.VerifyChain(
			signature.OrderHash(),
			signature.SupplierSignature(),
			signature.ServerSignature(),
			supplierPublicKey,
			serverPublicKey,
		)
		assert.True(t, supplierOK)
		assert.True(t, serverOK)
	})

	t.Run("tampered order hash breaks the supplier link", func(t *testing.T) {
		supplierOK, serverOK := signer.VerifyChain(
			signature.OrderHash()+"00",
			signature.SupplierSignature(),
			signature.ServerSignature(),
			supplierPublicKey,
			serverPublicKey,
		)
		assert.False(t, supplierOK)
		assert.False(t, serverOK)
	})

	t.Run("wrong server key breaks the server link", func(t *testing.T) {
		otherServerPublicKey, _ := cryptoKeyPair(t)

		supplierOK, serverOK := signer.VerifyChain(
			signature.OrderHash(),
			signature.SupplierSignature(),
			signature.ServerSignature(),
			supplierPublicKey,
			otherServerPublicKey,
		)
		assert.True(t, supplierOK)
		assert.False(t, serverOK)
	})

	t.Run("swapped keys break the whole chain", func(t *testing.T) {
		supplierOK, serverOK := signer.VerifyChain(
			signature.OrderHash(),
			signature.SupplierSignature(),
			signature.ServerSignature(),
			serverPublicKey,
			supplierPublicKey,
		)
		assert.False(t, supplierOK)
		assert.False(t, serverOK)
	})
}

func TestCustodySigner_Sign_InvalidKey(t *testing.T) {
	signer := services.NewCustodySigner()
	_, serverPrivateKey := cryptoKeyPair(t)

	_, err := signer.Sign(newTestOrder(t), "not a key", serverPrivateKey)
	require.Error(t, err)
}
