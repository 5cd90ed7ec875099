package interfaces

import domaintypes "ratchetkeys/internal/domain/types"

// KeyringStore keeps ratchet key pairs indexed by their key id.
type KeyringStore interface {
	// Put stores entry. When priv is non-nil it is sealed with passphrase
	// before it touches disk.
	Put(entry domaintypes.KeyringEntry, priv []byte, passphrase string) error
	Get(id domaintypes.KeyID) (domaintypes.KeyringEntry, bool, error)
	Private(id domaintypes.KeyID, passphrase string) ([]byte, error)
	List() ([]domaintypes.KeyringEntry, error)
	Delete(id domaintypes.KeyID) error
}
