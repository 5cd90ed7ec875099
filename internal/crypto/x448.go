package crypto

import (
	"bytes"
	"encoding/asn1"
	"errors"
	"io"
	"math/big"

	"github.com/cloudflare/circl/dh/x448"
)

// X448 is Curve448 (RFC 7748).
var X448 Curve = x448Curve{}

var (
	oidX448 = asn1.ObjectIdentifier{1, 3, 101, 111}

	// p = 2^448 - 2^224 - 1
	p448 = new(big.Int).Sub(
		new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 448), new(big.Int).Lsh(big.NewInt(1), 224)),
		big.NewInt(1),
	)

	probe448 = bytes.Repeat([]byte{0x5a}, x448.Size)

	errBadX448Length = errors.New("x448: key must be 56 bytes")
	errX448LowOrder  = errors.New("x448: low order point")
)

type x448Curve struct{}

func (x448Curve) Name() string               { return "x448" }
func (x448Curve) KeyLen() int                { return x448.Size }
func (x448Curve) OID() asn1.ObjectIdentifier { return oidX448 }

func (x448Curve) ValidPublicKey(pub []byte) bool {
	if len(pub) != x448.Size || !canonicalU(pub, p448) {
		return false
	}
	var shared, secret, point x448.Key
	copy(secret[:], probe448)
	copy(point[:], pub)
	return x448.Shared(&shared, &secret, &point)
}

func (c x448Curve) ValidPrivateKey(priv []byte) bool {
	if len(priv) != x448.Size || isZero(priv) {
		return false
	}
	_, err := c.PublicKey(priv)
	return err == nil
}

func (x448Curve) PublicKey(priv []byte) ([]byte, error) {
	if len(priv) != x448.Size {
		return nil, errBadX448Length
	}
	var secret, public x448.Key
	copy(secret[:], priv)
	x448.KeyGen(&public, &secret)
	if isZero(public[:]) {
		return nil, errX448LowOrder
	}
	return public[:], nil
}

// GenerateKey returns a fresh Curve448 key pair. Clamping is left to the
// scalar multiplication, as RFC 7748 decodes scalars on every use.
func (c x448Curve) GenerateKey(rand io.Reader) (priv, pub []byte, err error) {
	priv = make([]byte, x448.Size)
	if _, err = io.ReadFull(rand, priv); err != nil {
		return nil, nil, err
	}
	pub, err = c.PublicKey(priv)
	if err != nil {
		return nil, nil, err
	}
	return priv, pub, nil
}
