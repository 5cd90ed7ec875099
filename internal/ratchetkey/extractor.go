package ratchetkey

import (
	"crypto/subtle"
	"fmt"

	"ratchetkeys/internal/domain"
	"ratchetkeys/internal/keyformat"
	"ratchetkeys/internal/util/memzero"
)

type keyKind int

const (
	publicKind keyKind = iota
	privateKind
)

func (k keyKind) pemType() string {
	if k == privateKind {
		return keyformat.PEMPrivateKey
	}
	return keyformat.PEMPublicKey
}

// Extractor recognises key blobs and returns raw keys for its Params.
type Extractor struct {
	params *Params
}

// NewExtractor returns an Extractor for p; nil selects DefaultParams.
func NewExtractor(p *Params) *Extractor {
	if p == nil {
		p = DefaultParams()
	}
	return &Extractor{params: p}
}

// Params returns the parameters the extractor was built with.
func (e *Extractor) Params() *Params { return e.params }

// Detect returns the format ExtractPublicKey / ExtractPrivateKey would try
// for blob. It only looks at the length and leading bytes.
func (e *Extractor) Detect(blob []byte) domain.Format {
	switch {
	case len(blob) == e.params.KeyLen():
		return domain.FormatRaw
	case e.params.AcceptPEM() && keyformat.LooksLikePEM(blob):
		return domain.FormatPEM
	case keyformat.LooksLikeDER(blob):
		return domain.FormatDER
	default:
		return domain.FormatUnknown
	}
}

// ExtractPublicKey returns the raw public key carried by blob.
func (e *Extractor) ExtractPublicKey(blob []byte) ([]byte, error) {
	key, err := e.decode(blob, publicKind)
	if err != nil {
		return nil, err
	}
	if !e.params.curve.ValidPublicKey(key) {
		return nil, fmt.Errorf("%w: %w", ErrMalformedKey, ErrInvalidCurvePoint)
	}
	return key, nil
}

// ExtractPrivateKey returns the raw private key carried by blob.
func (e *Extractor) ExtractPrivateKey(blob []byte) ([]byte, error) {
	key, err := e.decode(blob, privateKind)
	if err != nil {
		return nil, err
	}
	if !e.params.curve.ValidPrivateKey(key) {
		memzero.Zero(key)
		return nil, fmt.Errorf("%w: %w", ErrMalformedKey, ErrInvalidScalar)
	}
	return key, nil
}

// decode returns a fresh copy of the key bytes; blob is never retained.
func (e *Extractor) decode(blob []byte, kind keyKind) ([]byte, error) {
	switch e.Detect(blob) {
	case domain.FormatRaw:
		return clone(blob), nil
	case domain.FormatPEM:
		der, err := keyformat.DecodePEM(blob, kind.pemType())
		if err != nil {
			return nil, malformed("%w", err)
		}
		return e.decodeDER(der, kind)
	case domain.FormatDER:
		return e.decodeDER(blob, kind)
	default:
		return nil, malformed("unrecognised encoding (%d bytes)", len(blob))
	}
}

func (e *Extractor) decodeDER(der []byte, kind keyKind) ([]byte, error) {
	if kind == publicKind {
		info, err := keyformat.ParsePublicKeyInfo(der)
		if err != nil {
			return nil, malformed("%w", err)
		}
		if err := e.checkEmbedded(info.Algorithm.String(), info.Key); err != nil {
			return nil, err
		}
		return clone(info.Key), nil
	}

	info, err := keyformat.ParsePrivateKeyInfo(der)
	if err != nil {
		return nil, malformed("%w", err)
	}
	if err := e.checkEmbedded(info.Algorithm.String(), info.Key); err != nil {
		return nil, err
	}
	if info.PublicKey != nil {
		if err := e.checkPublicHalf(info.Key, info.PublicKey); err != nil {
			return nil, err
		}
	}
	return clone(info.Key), nil
}

func (e *Extractor) checkEmbedded(alg string, key []byte) error {
	c := e.params.curve
	if alg != c.OID().String() {
		return malformed("algorithm %s, want %s (%s)", alg, c.OID(), c.Name())
	}
	if len(key) != c.KeyLen() {
		return malformed("embedded key is %d bytes, want %d", len(key), c.KeyLen())
	}
	return nil
}

// checkPublicHalf rejects v2 private keys whose public half does not belong
// to the private scalar.
func (e *Extractor) checkPublicHalf(priv, pub []byte) error {
	derived, err := e.params.curve.PublicKey(priv)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedKey, ErrInvalidScalar)
	}
	if subtle.ConstantTimeCompare(derived, pub) != 1 {
		return malformed("embedded public key does not match private key")
	}
	return nil
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
