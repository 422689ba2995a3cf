// Package cryptoutils provides the asymmetric-crypto primitives for the
// chain-of-custody signature protocol: RSA keypair generation, deterministic
// SHA-256 hashing, PKCS#1 v1.5 signing and verification, private key PEM
// canonicalization, and constant-time secret comparison.
//
// The package is deliberately free of domain knowledge. It operates on PEM
// strings and opaque payloads; what gets hashed and signed is decided by the
// domain services that call it.
package cryptoutils
