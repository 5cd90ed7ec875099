package ratchetkey

import (
	"fmt"

	"ratchetkeys/internal/keyformat"
)

// ExportPublicKey wraps a raw public key in a DER envelope, armored as PEM
// when armor is set. The key must be valid for the configured curve.
func (e *Extractor) ExportPublicKey(raw []byte, armor bool) ([]byte, error) {
	c := e.params.curve
	if len(raw) != c.KeyLen() {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidKeyLength, c.KeyLen(), len(raw))
	}
	if !c.ValidPublicKey(raw) {
		return nil, ErrInvalidCurvePoint
	}
	der, err := keyformat.MarshalPublicKeyInfo(c.OID(), raw)
	if err != nil {
		return nil, err
	}
	if armor {
		return keyformat.EncodePEM(keyformat.PEMPublicKey, der), nil
	}
	return der, nil
}

// ExportPrivateKey wraps a raw private key in a DER envelope, armored as PEM
// when armor is set. withPublic embeds the derived public key (v2 layout).
func (e *Extractor) ExportPrivateKey(raw []byte, withPublic, armor bool) ([]byte, error) {
	c := e.params.curve
	if len(raw) != c.KeyLen() {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidKeyLength, c.KeyLen(), len(raw))
	}
	if !c.ValidPrivateKey(raw) {
		return nil, ErrInvalidScalar
	}
	var pub []byte
	if withPublic {
		var err error
		if pub, err = c.PublicKey(raw); err != nil {
			return nil, err
		}
	}
	der, err := keyformat.MarshalPrivateKeyInfo(c.OID(), raw, pub)
	if err != nil {
		return nil, err
	}
	if armor {
		return keyformat.EncodePEM(keyformat.PEMPrivateKey, der), nil
	}
	return der, nil
}
