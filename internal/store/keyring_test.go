package store_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ratchetkeys/internal/domain"
	"ratchetkeys/internal/store"
)

func newKeyring(t *testing.T, dir string) *store.KeyringFileStore {
	t.Helper()
	ks, err := store.NewKeyringFileStore(dir,
		store.WithScryptParams(1<<10, 8, 1),
		store.WithCacheSize(4),
		store.WithClock(func() time.Time { return time.Unix(1700000000, 0) }),
	)
	require.NoError(t, err)
	return ks
}

func entry(b byte) domain.KeyringEntry {
	return domain.KeyringEntry{
		ID:     domain.KeyID{b, 1, 2, 3, 4, 5, 6, 7},
		Curve:  "x25519",
		Public: bytes.Repeat([]byte{b}, 32),
	}
}

func TestKeyring_PutGet_PersistsAcrossInstances(t *testing.T) {
	home := t.TempDir()
	e := entry(0x0a)

	require.NoError(t, newKeyring(t, home).Put(e, nil, ""))

	got, ok, err := newKeyring(t, home).Get(e.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, e.Public, got.Public)
	assert.Equal(t, int64(1700000000), got.CreatedAt)
	assert.False(t, got.HasPrivate())

	info, err := os.Stat(filepath.Join(home, "keyring.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestKeyring_Private_SealedWithPassphrase(t *testing.T) {
	home := t.TempDir()
	ks := newKeyring(t, home)
	e := entry(0x0b)
	priv := bytes.Repeat([]byte{0x42}, 32)

	require.NoError(t, ks.Put(e, priv, "correct"))

	raw, err := os.ReadFile(filepath.Join(home, "keyring.json"))
	require.NoError(t, err)
	assert.False(t, bytes.Contains(raw, priv), "private key must not be stored in the clear")

	got, err := newKeyring(t, home).Private(e.ID, "correct")
	require.NoError(t, err)
	assert.Equal(t, priv, got)

	_, err = ks.Private(e.ID, "wrong")
	assert.ErrorIs(t, err, store.ErrWrongPassphrase)
}

func TestKeyring_Errors(t *testing.T) {
	ks := newKeyring(t, t.TempDir())
	e := entry(0x0c)

	_, err := ks.Private(e.ID, "x")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, ks.Put(e, nil, ""))
	_, err = ks.Private(e.ID, "x")
	assert.ErrorIs(t, err, store.ErrNoPrivateKey)

	assert.Error(t, ks.Put(entry(0x0d), []byte{1}, ""), "private key without passphrase")
	assert.Error(t, ks.Put(domain.KeyringEntry{}, nil, ""), "zero key id")

	assert.ErrorIs(t, ks.Delete(entry(0x0e).ID), store.ErrNotFound)
}

func TestKeyring_ListAndDelete(t *testing.T) {
	ks := newKeyring(t, t.TempDir())

	for _, b := range []byte{0x03, 0x01, 0x02, 0x05, 0x04, 0x06} {
		require.NoError(t, ks.Put(entry(b), nil, ""))
	}

	list, err := ks.List()
	require.NoError(t, err)
	require.Len(t, list, 6)
	for i, e := range list {
		assert.Equal(t, byte(i+1), e.ID[0])
	}

	require.NoError(t, ks.Delete(entry(0x01).ID))
	_, ok, err := ks.Get(entry(0x01).ID)
	require.NoError(t, err)
	assert.False(t, ok)

	// Entries evicted from the cache are still served from disk.
	got, ok, err := ks.Get(entry(0x03).ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, entry(0x03).Public, got.Public)
}

func TestKeyring_PublicReimportKeepsSealedPrivate(t *testing.T) {
	home := t.TempDir()
	e := entry(0x0f)
	priv := bytes.Repeat([]byte{0x42}, 32)

	require.NoError(t, newKeyring(t, home).Put(e, priv, "pw"))
	require.NoError(t, newKeyring(t, home).Put(e, nil, ""))

	ks := newKeyring(t, home)
	got, ok, err := ks.Get(e.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.HasPrivate())

	unsealed, err := ks.Private(e.ID, "pw")
	require.NoError(t, err)
	assert.Equal(t, priv, unsealed)
}

func TestKeyring_RefusesToReplaceDifferentPair(t *testing.T) {
	ks := newKeyring(t, t.TempDir())
	e := entry(0x10)
	require.NoError(t, ks.Put(e, bytes.Repeat([]byte{0x42}, 32), "pw"))

	other := e
	other.Public = bytes.Repeat([]byte{0x11}, 32)
	assert.ErrorIs(t, ks.Put(other, nil, ""), store.ErrKeyConflict)

	got, ok, err := ks.Get(e.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, e.Public, got.Public)
}

func TestKeyring_GetReturnsPrivateCopy(t *testing.T) {
	ks := newKeyring(t, t.TempDir())
	e := entry(0x12)
	require.NoError(t, ks.Put(e, nil, ""))

	first, _, err := ks.Get(e.ID)
	require.NoError(t, err)
	first.Public[0] = 0xff

	second, _, err := ks.Get(e.ID)
	require.NoError(t, err)
	assert.Equal(t, byte(0x12), second.Public[0])
}
