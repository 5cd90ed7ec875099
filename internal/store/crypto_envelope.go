package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

const (
	// The current supported version of the sealed private key format.
	sealFormatVersion = 1
)

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect or the
	// sealed key has been modified / corrupted.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted private key")
)

// sealed is the JSON structure holding a private key ciphertext and its KDF parameters.
type sealed struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// scryptParams are the cost parameters used when sealing.
type scryptParams struct {
	N, R, P int
}

// Tunables for scrypt key derivation.
func scryptParamsDefault() scryptParams { return scryptParams{N: 1 << 15, R: 8, P: 1} }

// seal derives a key from passphrase and encrypts raw, binding ad.
func seal(passphrase string, raw, ad []byte, sp scryptParams) ([]byte, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt[:], sp.N, sp.R, sp.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; salt-bound key guarantees uniqueness
	ct := aead.Seal(nil, nonce[:], raw, additionalData(salt[:], ad))

	return json.Marshal(sealed{
		V:      sealFormatVersion,
		Salt:   salt[:],
		N:      sp.N,
		R:      sp.R,
		P:      sp.P,
		Cipher: ct,
	})
}

// open decrypts a sealed blob using a key derived from passphrase.
func open(passphrase string, b, ad []byte) ([]byte, error) {
	var s sealed
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	if s.V > sealFormatVersion {
		return nil, fmt.Errorf("unsupported sealed key version %d", s.V)
	}

	key, err := scrypt.Key([]byte(passphrase), s.Salt, s.N, s.R, s.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], s.Cipher, additionalData(s.Salt, ad))
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

func additionalData(salt, ad []byte) []byte {
	out := make([]byte, 0, len(salt)+len(ad))
	out = append(out, salt...)
	return append(out, ad...)
}
