package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ratchetkeys/internal/util/memzero"
)

func extractCmd() *cobra.Command {
	var (
		private  bool
		text     bool
		encoding string
	)
	cmd := &cobra.Command{
		Use:   "extract FILE|-",
		Short: "Print the raw key carried by a key blob",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := readBlob(cmd, args[0], text)
			if err != nil {
				return err
			}
			format := appCtx.Extractor.Detect(blob)

			var key []byte
			if private {
				key, err = appCtx.Extractor.ExtractPrivateKey(blob)
			} else {
				key, err = appCtx.Extractor.ExtractPublicKey(blob)
			}
			if err != nil {
				appCtx.Log.Debug("extract failed", zap.Stringer("format", format), zap.Error(err))
				return err
			}
			defer memzero.Zero(key)

			appCtx.Log.Debug("extracted", zap.Stringer("format", format), zap.Bool("private", private))
			return writeKey(cmd, key, encoding)
		},
	}
	cmd.Flags().BoolVar(&private, "private", false, "input is a private key")
	cmd.Flags().BoolVar(&text, "text", false, "input is a hex or base64 string")
	cmd.Flags().StringVarP(&encoding, "out", "o", "hex", "output encoding: hex, base64, raw")
	return cmd
}
