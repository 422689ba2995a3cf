package cryptoutils_test

import (
	"testing"

	"supplytrace/internal/pkg/cryptoutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerifySignature(t *testing.T) {
	publicKeyPEM, privateKeyPEM, err := cryptoutils.GenerateKeyPair()
	require.NoError(t, err)

	data := "order-hash-payload"
	signature, err := cryptoutils.Sign(data, privateKeyPEM)
	require.NoError(t, err)
	require.NotEmpty(t, signature)

	t.Run("valid signature", func(t *testing.T) {
		assert.True(t, cryptoutils.VerifySignature(data, signature, publicKeyPEM))
	})

	t.Run("tampered data", func(t *testing.T) {
		assert.False(t, cryptoutils.VerifySignature(data+"x", signature, publicKeyPEM))
	})

	t.Run("wrong public key", func(t *testing.T) {
		otherPublicKeyPEM, _, err := cryptoutils.GenerateKeyPair()
		require.NoError(t, err)
		assert.False(t, cryptoutils.VerifySignature(data, signature, otherPublicKeyPEM))
	})

	t.Run("garbled signature", func(t *testing.T) {
		assert.False(t, cryptoutils.VerifySignature(data, "%%% not base64 %%%", publicKeyPEM))
		assert.False(t, cryptoutils.VerifySignature(data, "", publicKeyPEM))
	})

	t.Run("garbled public key", func(t *testing.T) {
		assert.False(t, cryptoutils.VerifySignature(data, signature, "not a key"))
	})
}

func TestSign_InvalidKey(t *testing.T) {
	_, err := cryptoutils.Sign("payload", "not a pem block")
	require.Error(t, err)
}
