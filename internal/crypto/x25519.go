package crypto

import (
	"bytes"
	"encoding/asn1"
	"errors"
	"io"
	"math/big"

	"golang.org/x/crypto/curve25519"
)

// X25519 is Curve25519 as used by the double ratchet (RFC 7748).
var X25519 Curve = x25519Curve{}

var (
	oidX25519 = asn1.ObjectIdentifier{1, 3, 101, 110}

	// p = 2^255 - 19
	p25519 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))

	// Any scalar works: X25519 clamps it to a multiple of the cofactor, so
	// low-order inputs collapse to the all-zero output that X25519 rejects.
	probe25519 = bytes.Repeat([]byte{0x5a}, curve25519.ScalarSize)

	errBadX25519Length = errors.New("x25519: key must be 32 bytes")
)

type x25519Curve struct{}

func (x25519Curve) Name() string               { return "x25519" }
func (x25519Curve) KeyLen() int                { return curve25519.PointSize }
func (x25519Curve) OID() asn1.ObjectIdentifier { return oidX25519 }

// ValidPublicKey masks bit 255 before checking the u-coordinate, as
// RFC 7748 section 5 requires of receivers.
func (x25519Curve) ValidPublicKey(pub []byte) bool {
	if len(pub) != curve25519.PointSize {
		return false
	}
	u := bytes.Clone(pub)
	u[31] &= 0x7f
	if !canonicalU(u, p25519) {
		return false
	}
	_, err := curve25519.X25519(probe25519, pub)
	return err == nil
}

func (c x25519Curve) ValidPrivateKey(priv []byte) bool {
	if len(priv) != curve25519.ScalarSize || isZero(priv) {
		return false
	}
	_, err := c.PublicKey(priv)
	return err == nil
}

func (x25519Curve) PublicKey(priv []byte) ([]byte, error) {
	if len(priv) != curve25519.ScalarSize {
		return nil, errBadX25519Length
	}
	return curve25519.X25519(priv, curve25519.Basepoint)
}

// GenerateKey returns a fresh Curve25519 key pair.
// The private key is clamped per RFC 7748.
func (c x25519Curve) GenerateKey(rand io.Reader) (priv, pub []byte, err error) {
	priv = make([]byte, curve25519.ScalarSize)
	if _, err = io.ReadFull(rand, priv); err != nil {
		return nil, nil, err
	}
	clamp(priv)
	pub, err = c.PublicKey(priv)
	if err != nil {
		return nil, nil, err
	}
	return priv, pub, nil
}

func clamp(kb []byte) {
	kb[0] &= 248
	kb[31] &= 127
	kb[31] |= 64
}
