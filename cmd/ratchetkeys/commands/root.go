package commands

import (
	"os"

	"github.com/spf13/cobra"

	"ratchetkeys/internal/app"
)

var (
	cfg        app.Config
	noPEM      bool
	passphrase string
	appCtx     *app.Wire
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	defaults := app.DefaultConfig()

	root := &cobra.Command{
		Use:          "ratchetkeys",
		Short:        "Extract ratchet DH keys and compute key-pair ids",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.AcceptPEM = !noPEM
			if passphrase == "" {
				passphrase = os.Getenv(app.EnvPassphrase)
			}
			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				_ = appCtx.Log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfg.Home, "home", defaults.Home, "keyring dir (default ~/.ratchetkeys, env "+app.EnvHome+")")
	pf.StringVar(&cfg.Curve, "curve", defaults.Curve, "curve: x25519 or x448")
	pf.StringVar(&cfg.Hash, "hash", defaults.Hash, "key-id hash: sha512, sha256, blake3, hmac-sha512")
	pf.StringVar(&cfg.HashKey, "hash-key", "", "hex key for keyed key-id hashes")
	pf.StringVar(&cfg.LogLevel, "log-level", defaults.LogLevel, "log level: debug, info, warn, error")
	pf.BoolVar(&noPEM, "no-pem", false, "reject PEM armored input")
	pf.StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting private keys (env "+app.EnvPassphrase+")")

	root.AddCommand(
		extractCmd(),
		keyIDCmd(),
		inspectCmd(),
		generateCmd(),
		importCmd(),
		listCmd(),
		showCmd(),
		removeCmd(),
	)
	return root
}
