package ratchetkey

import (
	"fmt"

	"ratchetkeys/internal/domain"
	"ratchetkeys/internal/util/memzero"
)

// KeyIDDeriver computes key-pair identifiers for its Params.
type KeyIDDeriver struct {
	params *Params
}

// NewKeyIDDeriver returns a KeyIDDeriver for p; nil selects DefaultParams.
func NewKeyIDDeriver(p *Params) *KeyIDDeriver {
	if p == nil {
		p = DefaultParams()
	}
	return &KeyIDDeriver{params: p}
}

// ComputeKeyID returns the first 8 bytes of Hash(publicKey).
//
// The key is not checked against the curve, only its length.
func (d *KeyIDDeriver) ComputeKeyID(publicKey []byte) (domain.KeyID, error) {
	var id domain.KeyID
	if want := d.params.KeyLen(); len(publicKey) != want {
		return id, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidKeyLength, want, len(publicKey))
	}
	sum := d.params.hash.Sum(publicKey)
	copy(id[:], sum[:domain.KeyIDLen])
	return id, nil
}

// PublicKeyID extracts the public key in blob and returns its key id.
func (e *Extractor) PublicKeyID(blob []byte) (domain.KeyID, error) {
	pub, err := e.ExtractPublicKey(blob)
	if err != nil {
		return domain.KeyID{}, err
	}
	return NewKeyIDDeriver(e.params).ComputeKeyID(pub)
}

// PrivateKeyID extracts the private key in blob and returns the key id of
// its public half, so both halves of a pair map to the same id.
func (e *Extractor) PrivateKeyID(blob []byte) (domain.KeyID, error) {
	priv, err := e.ExtractPrivateKey(blob)
	if err != nil {
		return domain.KeyID{}, err
	}
	defer memzero.Zero(priv)

	pub, err := e.params.curve.PublicKey(priv)
	if err != nil {
		return domain.KeyID{}, fmt.Errorf("%w: %w", ErrMalformedKey, ErrInvalidScalar)
	}
	return NewKeyIDDeriver(e.params).ComputeKeyID(pub)
}
