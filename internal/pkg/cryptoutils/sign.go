package cryptoutils

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// Sign produces an RSA PKCS#1 v1.5 signature over the SHA-256 digest of data
// and returns it base64-encoded.
func Sign(data, privateKeyPEM string) (string, error) {
	key, err := ParsePrivateKey(privateKeyPEM)
	if err != nil {
		return "", err
	}

	digest := sha256.Sum256([]byte(data))
	signature, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, digest[:])
	if err != nil {
		return "", fmt.Errorf("failed to sign data: %w", err)
	}

	return base64.StdEncoding.EncodeToString(signature), nil
}

// VerifySignature reports whether signatureB64 is a valid signature over data
// by the holder of publicKeyPEM. It never returns an error: any decoding or
// verification failure yields false, so callers treat verification as a plain
// predicate.
func VerifySignature(data, signatureB64, publicKeyPEM string) bool {
	key, err := ParsePublicKey(publicKeyPEM)
	if err != nil {
		return false
	}

	signature, err := base64.StdEncoding.DecodeString(signatureB64)
	if err != nil {
		return false
	}

	digest := sha256.Sum256([]byte(data))
	return rsa.VerifyPKCS1v15(key, crypto.SHA256, digest[:], signature) == nil
}
