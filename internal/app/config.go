package app

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"

	"ratchetkeys/internal/crypto"
)

// Environment variables consulted by DefaultConfig.
const (
	EnvHome       = "RATCHETKEYS_HOME"
	EnvPassphrase = "RATCHETKEYS_PASSPHRASE"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string // keyring directory, e.g. $HOME/.ratchetkeys
	Curve     string // x25519 or x448
	Hash      string // key-id hash: sha512, sha256, blake3, hmac-sha512
	HashKey   string // hex key for keyed hashes
	AcceptPEM bool   // recognise PEM armored envelopes
	LogLevel  string // zap level: debug, info, warn, error
}

// DefaultConfig returns the X25519 / SHA-512 configuration with Home taken
// from RATCHETKEYS_HOME or ~/.ratchetkeys.
func DefaultConfig() Config {
	cfg := Config{
		Home:      os.Getenv(EnvHome),
		Curve:     crypto.X25519.Name(),
		Hash:      crypto.HashSHA512,
		AcceptPEM: true,
		LogLevel:  "warn",
	}
	if cfg.Home == "" {
		if dir, err := os.UserHomeDir(); err == nil {
			cfg.Home = filepath.Join(dir, ".ratchetkeys")
		}
	}
	return cfg
}

// Validate checks that the curve and hash can be resolved.
func (c Config) Validate() error {
	if c.Home == "" {
		return errors.New("config: home directory is required")
	}
	if _, err := crypto.CurveByName(c.Curve); err != nil {
		return err
	}
	_, err := c.hasher()
	return err
}

func (c Config) hasher() (crypto.Hasher, error) {
	var key []byte
	if c.HashKey != "" {
		var err error
		if key, err = hex.DecodeString(c.HashKey); err != nil {
			return nil, errors.New("config: hash key must be hex")
		}
	}
	return crypto.NewHasher(c.Hash, key)
}
