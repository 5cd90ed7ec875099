package ratchetkey

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedKey is returned when a blob does not decode to a key under
	// any recognised format. Curve validation failures wrap it too.
	ErrMalformedKey = errors.New("malformed key")
	// ErrInvalidCurvePoint marks a well-formed public key that is not a
	// usable point on the configured curve.
	ErrInvalidCurvePoint = errors.New("invalid curve point")
	// ErrInvalidScalar marks a well-formed private key outside the valid
	// scalar range.
	ErrInvalidScalar = errors.New("invalid private scalar")
	// ErrInvalidKeyLength is returned by key id derivation for keys that are
	// not exactly the native key length.
	ErrInvalidKeyLength = errors.New("invalid key length")
)

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrMalformedKey}, args...)...)
}
