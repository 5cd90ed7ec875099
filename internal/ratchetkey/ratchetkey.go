package ratchetkey

import "ratchetkeys/internal/domain"

var (
	defaultExtractor = NewExtractor(nil)
	defaultDeriver   = NewKeyIDDeriver(nil)
)

// ExtractPublicKey extracts an X25519 public key using DefaultParams.
func ExtractPublicKey(blob []byte) ([]byte, error) {
	return defaultExtractor.ExtractPublicKey(blob)
}

// ExtractPrivateKey extracts an X25519 private key using DefaultParams.
func ExtractPrivateKey(blob []byte) ([]byte, error) {
	return defaultExtractor.ExtractPrivateKey(blob)
}

// ComputePublicKeyID derives the key id of an X25519 public key using
// DefaultParams.
func ComputePublicKeyID(publicKey []byte) (domain.KeyID, error) {
	return defaultDeriver.ComputeKeyID(publicKey)
}

var (
	_ domain.KeyExtractor = (*Extractor)(nil)
	_ domain.KeyIDDeriver = (*KeyIDDeriver)(nil)
)
