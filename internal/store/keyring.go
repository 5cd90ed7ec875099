package store

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"ratchetkeys/internal/domain"
)

const (
	keyringFile      = "keyring.json"
	keyringVersion   = 1
	defaultCacheSize = 128
)

var (
	ErrNotFound     = errors.New("key not found in keyring")
	ErrNoPrivateKey = errors.New("keyring entry has no private key")
	ErrKeyConflict  = errors.New("keyring entry holds a different key pair")
)

// keyringDoc is the on-disk layout of keyring.json.
type keyringDoc struct {
	V       int                            `json:"v"`
	Entries map[string]domain.KeyringEntry `json:"entries"`
}

// KeyringOption configures a KeyringFileStore.
type KeyringOption func(*KeyringFileStore)

// WithCacheSize bounds the number of entries kept in memory.
func WithCacheSize(n int) KeyringOption {
	return func(s *KeyringFileStore) { s.cacheSize = n }
}

// WithScryptParams overrides the sealing cost parameters.
func WithScryptParams(n, r, p int) KeyringOption {
	return func(s *KeyringFileStore) { s.scrypt = scryptParams{N: n, R: r, P: p} }
}

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) KeyringOption {
	return func(s *KeyringFileStore) { s.now = now }
}

// KeyringFileStore persists key pairs under dir.
type KeyringFileStore struct {
	dir       string
	mu        sync.Mutex
	cache     *lru.Cache[domain.KeyID, domain.KeyringEntry]
	cacheSize int
	scrypt    scryptParams
	now       func() time.Time
}

// NewKeyringFileStore returns a KeyringFileStore rooted at dir.
func NewKeyringFileStore(dir string, opts ...KeyringOption) (*KeyringFileStore, error) {
	s := &KeyringFileStore{
		dir:       dir,
		cacheSize: defaultCacheSize,
		scrypt:    scryptParamsDefault(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	cache, err := lru.New[domain.KeyID, domain.KeyringEntry](s.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("keyring cache: %w", err)
	}
	s.cache = cache
	return s, nil
}

// Put stores entry under its id. A non-nil priv is sealed with passphrase;
// priv itself is left untouched.
//
// Storing only the public half of a pair that already has a sealed private
// half keeps the sealed half. An existing pair whose public key differs is
// never replaced.
func (s *KeyringFileStore) Put(entry domain.KeyringEntry, priv []byte, passphrase string) error {
	if entry.ID.IsZero() {
		return errors.New("keyring entry needs a key id")
	}
	if priv != nil {
		if passphrase == "" {
			return errors.New("passphrase required to store a private key")
		}
		sealedKey, err := seal(passphrase, priv, entry.ID.Slice(), s.scrypt)
		if err != nil {
			return err
		}
		entry.Sealed = sealedKey
	}
	if entry.CreatedAt == 0 {
		entry.CreatedAt = s.now().Unix()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if old, ok := doc.Entries[entry.ID.String()]; ok && old.HasPrivate() {
		if !bytes.Equal(old.Public, entry.Public) {
			return fmt.Errorf("%w: %s", ErrKeyConflict, entry.ID)
		}
		if priv == nil {
			entry.Sealed = old.Sealed
		}
		if entry.Label == "" {
			entry.Label = old.Label
		}
	}
	doc.Entries[entry.ID.String()] = entry
	if err := s.save(doc); err != nil {
		return err
	}
	s.cache.Add(entry.ID, cloneEntry(entry))
	return nil
}

// Get returns the entry stored under id.
func (s *KeyringFileStore) Get(id domain.KeyID) (domain.KeyringEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.cache.Get(id); ok {
		return cloneEntry(e), true, nil
	}
	doc, err := s.load()
	if err != nil {
		return domain.KeyringEntry{}, false, err
	}
	e, ok := doc.Entries[id.String()]
	if !ok {
		return domain.KeyringEntry{}, false, nil
	}
	s.cache.Add(id, cloneEntry(e))
	return e, true, nil
}

// Private unseals the private half stored under id.
func (s *KeyringFileStore) Private(id domain.KeyID, passphrase string) ([]byte, error) {
	e, ok, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if !e.HasPrivate() {
		return nil, fmt.Errorf("%w: %s", ErrNoPrivateKey, id)
	}
	return open(passphrase, e.Sealed, id.Slice())
}

// List returns all entries ordered by key id.
func (s *KeyringFileStore) List() ([]domain.KeyringEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.KeyringEntry, 0, len(doc.Entries))
	for _, e := range doc.Entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out, nil
}

// Delete removes the entry stored under id.
func (s *KeyringFileStore) Delete(id domain.KeyID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := doc.Entries[id.String()]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(doc.Entries, id.String())
	s.cache.Remove(id)
	return s.save(doc)
}

// cloneEntry copies the slices of e so cached entries never alias caller
// memory.
func cloneEntry(e domain.KeyringEntry) domain.KeyringEntry {
	e.Public = bytes.Clone(e.Public)
	e.Sealed = bytes.Clone(e.Sealed)
	return e
}

func (s *KeyringFileStore) path() string { return filepath.Join(s.dir, keyringFile) }

func (s *KeyringFileStore) load() (keyringDoc, error) {
	doc := keyringDoc{V: keyringVersion}
	if err := readJSON(s.path(), &doc); err != nil {
		return doc, fmt.Errorf("read keyring: %w", err)
	}
	if doc.V > keyringVersion {
		return doc, fmt.Errorf("unsupported keyring version %d", doc.V)
	}
	if doc.Entries == nil {
		doc.Entries = make(map[string]domain.KeyringEntry)
	}
	return doc, nil
}

func (s *KeyringFileStore) save(doc keyringDoc) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	doc.V = keyringVersion
	return writeJSON(s.path(), doc, 0o600)
}

// Compile-time assertion that KeyringFileStore implements domain.KeyringStore.
var _ domain.KeyringStore = (*KeyringFileStore)(nil)
