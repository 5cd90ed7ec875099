package app

import (
	"fmt"

	"go.uber.org/zap"

	"ratchetkeys/internal/crypto"
	"ratchetkeys/internal/domain"
	"ratchetkeys/internal/ratchetkey"
	"ratchetkeys/internal/store"
)

// Wire bundles the shared parameters, services and stores for the CLI.
type Wire struct {
	Config    Config
	Params    *ratchetkey.Params
	Extractor *ratchetkey.Extractor
	KeyIDs    domain.KeyIDDeriver
	Keyring   domain.KeyringStore
	Log       *zap.Logger
}

// NewWire constructs the dependency graph from cfg. Params are built once
// here and shared by every component.
func NewWire(cfg Config) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	curve, _ := crypto.CurveByName(cfg.Curve)
	hash, _ := cfg.hasher()
	params, err := ratchetkey.NewParams(
		ratchetkey.WithCurve(curve),
		ratchetkey.WithHash(hash),
		ratchetkey.WithPEM(cfg.AcceptPEM),
	)
	if err != nil {
		return nil, err
	}

	keyring, err := store.NewKeyringFileStore(cfg.Home)
	if err != nil {
		return nil, fmt.Errorf("open keyring: %w", err)
	}

	log.Debug("wired",
		zap.String("home", cfg.Home),
		zap.String("curve", curve.Name()),
		zap.String("hash", hash.Name()),
		zap.Bool("pem", cfg.AcceptPEM),
	)

	return &Wire{
		Config:    cfg,
		Params:    params,
		Extractor: ratchetkey.NewExtractor(params),
		KeyIDs:    ratchetkey.NewKeyIDDeriver(params),
		Keyring:   keyring,
		Log:       log,
	}, nil
}

// NewLogger builds a console logger writing to stderr at level.
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = lvl
	zc.Encoding = "console"
	zc.DisableStacktrace = true
	return zc.Build()
}
