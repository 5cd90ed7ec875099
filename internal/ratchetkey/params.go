package ratchetkey

import (
	"errors"

	"ratchetkeys/internal/crypto"
)

// Params is the curve and key-id hash shared by extraction and key id
// derivation. Build it once and share it; it is never mutated.
type Params struct {
	curve     crypto.Curve
	hash      crypto.Hasher
	acceptPEM bool
}

// Option configures Params.
type Option func(*Params)

// WithCurve selects the curve keys are extracted for.
func WithCurve(c crypto.Curve) Option { return func(p *Params) { p.curve = c } }

// WithHash selects the key-id hash.
func WithHash(h crypto.Hasher) Option { return func(p *Params) { p.hash = h } }

// WithPEM toggles recognition of PEM armored envelopes.
func WithPEM(accept bool) Option { return func(p *Params) { p.acceptPEM = accept } }

// NewParams returns X25519 / SHA-512 / PEM-enabled parameters modified by opts.
func NewParams(opts ...Option) (*Params, error) {
	p := &Params{
		curve:     crypto.X25519,
		hash:      crypto.SHA512,
		acceptPEM: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.curve == nil {
		return nil, errors.New("ratchetkey: curve is required")
	}
	if p.hash == nil {
		return nil, errors.New("ratchetkey: hash is required")
	}
	return p, nil
}

var defaultParams, _ = NewParams()

// DefaultParams returns the process-wide X25519 / SHA-512 parameters.
func DefaultParams() *Params { return defaultParams }

// Curve returns the configured curve.
func (p *Params) Curve() crypto.Curve { return p.curve }

// Hash returns the configured key-id hash.
func (p *Params) Hash() crypto.Hasher { return p.hash }

// KeyLen returns the curve's native key length.
func (p *Params) KeyLen() int { return p.curve.KeyLen() }

// AcceptPEM reports whether PEM armor is recognised.
func (p *Params) AcceptPEM() bool { return p.acceptPEM }
