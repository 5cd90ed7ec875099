// Package store provides file-based persistence for ratchet key pairs.
//
// KeyringFileStore keeps every known key pair in a single JSON document,
// keyed by the pair's 8-byte key id. Private halves are sealed with a
// passphrase (scrypt + ChaCha20-Poly1305) before they are written; public
// halves are stored in the clear. Writes go through a temp file and an
// atomic rename. All methods are concurrency-safe via internal locking, and
// recent lookups are served from an in-memory LRU cache.
package store
