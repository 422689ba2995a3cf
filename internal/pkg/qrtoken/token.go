// Package qrtoken implements the compact, URL-safe token embedded in a
// package's QR code. The token carries the order id, both signature layers,
// an issue timestamp, and a random nonce. It is a transport envelope only:
// the strings inside are opaque to this package.
//
// The wire format is the JSON payload {oid, ss, svs, ts, nonce} encoded with
// the URL-safe base64 alphabet and no trailing padding. Field names are part
// of the wire contract and must not change without a version marker.
package qrtoken

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// nonceBytes is the length of the random nonce attached to every token.
const nonceBytes = 8

// Payload is the decoded content of a QR token.
type Payload struct {
	OrderID           string `json:"oid"`
	SupplierSignature string `json:"ss"`
	ServerSignature   string `json:"svs"`
	IssuedAt          int64  `json:"ts"`
	Nonce             string `json:"nonce"`
}

// Encode builds a token for the given order and signature pair. The issue
// timestamp and nonce are generated here so that two tokens for the same
// order are never byte-identical.
func Encode(orderID, supplierSignature, serverSignature string) (string, error) {
	nonce := make([]byte, nonceBytes)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate token nonce: %w", err)
	}

	payload := Payload{
		OrderID:           orderID,
		SupplierSignature: supplierSignature,
		ServerSignature:   serverSignature,
		IssuedAt:          time.Now().UnixMilli(),
		Nonce:             hex.EncodeToString(nonce),
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal token payload: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Decode parses a token back into its payload. Decoding is total: any
// malformed input (wrong alphabet, truncation, bad JSON, missing fields)
// yields nil rather than an error, so callers treat "undecodable" as one
// uniform verification failure without leaking parser internals.
func Decode(token string) *Payload {
	if token == "" {
		return nil
	}

	// Accept tokens from issuers that kept standard-alphabet characters or
	// trailing padding.
	normalized := strings.NewReplacer("-", "+", "_", "/").Replace(token)
	normalized = strings.TrimRight(normalized, "=")
	if pad := len(normalized) % 4; pad != 0 {
		normalized += strings.Repeat("=", 4-pad)
	}

	raw, err := base64.StdEncoding.DecodeString(normalized)
	if err != nil {
		return nil
	}

	var payload Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}

	if payload.OrderID == "" || payload.SupplierSignature == "" || payload.ServerSignature == "" {
		return nil
	}

	return &payload
}
