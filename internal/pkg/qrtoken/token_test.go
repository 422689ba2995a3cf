package qrtoken_test

import (
	"encoding/base64"
	"testing"
	"time"

	"supplytrace/internal/pkg/qrtoken"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	token, err := qrtoken.Encode("order-123", "supplier-sig", "server-sig")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	payload := qrtoken.Decode(token)
	require.NotNil(t, payload)
	assert.Equal(t, "order-123", payload.OrderID)
	assert.Equal(t, "supplier-sig", payload.SupplierSignature)
	assert.Equal(t, "server-sig", payload.ServerSignature)
	assert.NotEmpty(t, payload.Nonce)
	assert.InDelta(t, time.Now().UnixMilli(), payload.IssuedAt, float64(5*time.Second/time.Millisecond))
}

func TestEncode_TokensAreUnique(t *testing.T) {
	first, err := qrtoken.Encode("order-123", "ss", "svs")
	require.NoError(t, err)
	second, err := qrtoken.Encode("order-123", "ss", "svs")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not base64", "!!!not-base64!!!"},
		{"base64 of non-json", base64.RawURLEncoding.EncodeToString([]byte("not json"))},
		{"missing order id", base64.RawURLEncoding.EncodeToString([]byte(`{"ss":"a","svs":"b"}`))},
		{"missing supplier signature", base64.RawURLEncoding.EncodeToString([]byte(`{"oid":"o","svs":"b"}`))},
		{"missing server signature", base64.RawURLEncoding.EncodeToString([]byte(`{"oid":"o","ss":"a"}`))},
		{"truncated", "eyJvaWQiOiJ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, qrtoken.Decode(tt.token))
		})
	}
}

func TestDecode_AcceptsPaddedStandardAlphabet(t *testing.T) {
	token, err := qrtoken.Encode("order-123", "sig/with+chars", "server-sig")
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)
	padded := base64.StdEncoding.EncodeToString(raw)

	payload := qrtoken.Decode(padded)
	require.NotNil(t, payload)
	assert.Equal(t, "order-123", payload.OrderID)
	assert.Equal(t, "sig/with+chars", payload.SupplierSignature)
}
