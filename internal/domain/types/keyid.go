package types

import (
	"encoding/hex"
	"fmt"
)

// KeyIDLen is the size of a key-pair identifier in bytes.
const KeyIDLen = 8

// KeyID is a short deterministic fingerprint of a ratchet public key.
// It is used to look key pairs up, never to authenticate them.
type KeyID [KeyIDLen]byte

// String returns the identifier as lower-case hex.
func (id KeyID) String() string { return hex.EncodeToString(id[:]) }

// Slice returns the identifier as a []byte.
func (id KeyID) Slice() []byte { return id[:] }

// IsZero reports whether id is the zero value.
func (id KeyID) IsZero() bool { return id == KeyID{} }

// MarshalText implements encoding.TextMarshaler.
func (id KeyID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *KeyID) UnmarshalText(b []byte) error {
	parsed, err := ParseKeyID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ParseKeyID decodes a hex key identifier.
func ParseKeyID(s string) (KeyID, error) {
	var id KeyID
	b, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("key id %q: %w", s, err)
	}
	if len(b) != KeyIDLen {
		return id, fmt.Errorf("key id: want %d bytes, got %d", KeyIDLen, len(b))
	}
	copy(id[:], b)
	return id, nil
}
