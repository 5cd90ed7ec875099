package types

// KeyringEntry is one key pair tracked by the local keyring.
type KeyringEntry struct {
	ID        KeyID  `json:"id"`
	Curve     string `json:"curve"`
	Label     string `json:"label,omitempty"`
	Public    []byte `json:"public"`
	Sealed    []byte `json:"sealed,omitempty"` // passphrase-sealed private key
	CreatedAt int64  `json:"created_at"`
}

// HasPrivate reports whether the entry carries a sealed private half.
func (e KeyringEntry) HasPrivate() bool { return len(e.Sealed) > 0 }
