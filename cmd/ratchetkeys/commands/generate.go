package commands

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ratchetkeys/internal/domain"
	"ratchetkeys/internal/util/memzero"
)

func generateCmd() *cobra.Command {
	var (
		outDir     string
		name       string
		armor      bool
		withPublic bool
		store      bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Create a key pair and write it as DER or PEM envelopes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if store && passphrase == "" {
				return fmt.Errorf("passphrase required (-p) to store the private key")
			}
			curve := appCtx.Params.Curve()
			priv, pub, err := curve.GenerateKey(rand.Reader)
			if err != nil {
				return err
			}
			defer memzero.Zero(priv)

			pubBlob, err := appCtx.Extractor.ExportPublicKey(pub, armor)
			if err != nil {
				return err
			}
			privBlob, err := appCtx.Extractor.ExportPrivateKey(priv, withPublic, armor)
			if err != nil {
				return err
			}
			defer memzero.Zero(privBlob)

			if err := os.MkdirAll(outDir, 0o700); err != nil {
				return err
			}
			ext := ".der"
			if armor {
				ext = ".pem"
			}
			pubPath := filepath.Join(outDir, name+".pub"+ext)
			privPath := filepath.Join(outDir, name+".key"+ext)
			if err := writeNew(privPath, privBlob, 0o600); err != nil {
				return err
			}
			if err := writeNew(pubPath, pubBlob, 0o644); err != nil {
				_ = os.Remove(privPath)
				return err
			}

			id, err := appCtx.KeyIDs.ComputeKeyID(pub)
			if err != nil {
				return err
			}
			if store {
				entry := domain.KeyringEntry{ID: id, Curve: curve.Name(), Label: name, Public: pub}
				if err := appCtx.Keyring.Put(entry, priv, passphrase); err != nil {
					return err
				}
			}
			appCtx.Log.Info("generated key pair",
				zap.String("curve", curve.Name()),
				zap.Stringer("key_id", id),
				zap.String("public", pubPath),
				zap.String("private", privPath),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Key pair written.\nKey id: %s\n", id)
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	cmd.Flags().StringVar(&name, "name", "ratchet", "file name prefix")
	cmd.Flags().BoolVar(&armor, "pem", false, "write PEM instead of DER")
	cmd.Flags().BoolVar(&withPublic, "with-public", false, "embed the public key in the private envelope")
	cmd.Flags().BoolVar(&store, "store", false, "also add the pair to the keyring")
	return cmd
}
