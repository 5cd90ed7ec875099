package crypto

import (
	"crypto/subtle"
	"encoding/asn1"
	"fmt"
	"io"
	"math/big"
	"strings"
)

// Curve describes a Montgomery curve usable by the ratchet's DH step.
type Curve interface {
	// Name is the lower-case curve name, e.g. "x25519".
	Name() string
	// KeyLen is the native length of both raw public and private keys.
	KeyLen() int
	// OID is the RFC 8410 algorithm identifier of the curve.
	OID() asn1.ObjectIdentifier
	// ValidPublicKey reports whether pub is a canonical, non low-order point.
	ValidPublicKey(pub []byte) bool
	// ValidPrivateKey reports whether priv is a usable private scalar.
	ValidPrivateKey(priv []byte) bool
	// PublicKey derives the public key of priv.
	PublicKey(priv []byte) ([]byte, error)
	// GenerateKey returns a fresh key pair read from rand.
	GenerateKey(rand io.Reader) (priv, pub []byte, err error)
}

var curves = map[string]Curve{
	X25519.Name(): X25519,
	X448.Name():   X448,
}

// CurveByName resolves a curve name (case-insensitive).
func CurveByName(name string) (Curve, error) {
	c, ok := curves[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown curve %q", name)
	}
	return c, nil
}

// CurveByOID resolves an RFC 8410 algorithm identifier.
func CurveByOID(oid asn1.ObjectIdentifier) (Curve, bool) {
	for _, c := range curves {
		if c.OID().Equal(oid) {
			return c, true
		}
	}
	return nil, false
}

// canonicalU reports whether the little-endian u-coordinate is below p.
func canonicalU(u []byte, p *big.Int) bool {
	be := make([]byte, len(u))
	for i := range u {
		be[len(u)-1-i] = u[i]
	}
	return new(big.Int).SetBytes(be).Cmp(p) < 0
}

func isZero(b []byte) bool {
	return subtle.ConstantTimeCompare(b, make([]byte, len(b))) == 1
}
