package interfaces

import domaintypes "ratchetkeys/internal/domain/types"

// KeyExtractor turns serialized key blobs into raw ratchet keys.
type KeyExtractor interface {
	ExtractPublicKey(blob []byte) ([]byte, error)
	ExtractPrivateKey(blob []byte) ([]byte, error)
	Detect(blob []byte) domaintypes.Format
}

// KeyIDDeriver computes key-pair identifiers from raw public keys.
type KeyIDDeriver interface {
	ComputeKeyID(publicKey []byte) (domaintypes.KeyID, error)
}
