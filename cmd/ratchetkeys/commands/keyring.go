package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ratchetkeys/internal/crypto"
	"ratchetkeys/internal/domain"
	"ratchetkeys/internal/util/memzero"
)

func importCmd() *cobra.Command {
	var (
		private bool
		text    bool
		label   string
	)
	cmd := &cobra.Command{
		Use:   "import FILE|-",
		Short: "Add a key blob to the local keyring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := readBlob(cmd, args[0], text)
			if err != nil {
				return err
			}
			curve := appCtx.Params.Curve()

			var pub, priv []byte
			if private {
				if passphrase == "" {
					return fmt.Errorf("passphrase required (-p)")
				}
				if priv, err = appCtx.Extractor.ExtractPrivateKey(blob); err != nil {
					return err
				}
				defer memzero.Zero(priv)
				if pub, err = curve.PublicKey(priv); err != nil {
					return err
				}
			} else if pub, err = appCtx.Extractor.ExtractPublicKey(blob); err != nil {
				return err
			}

			id, err := appCtx.KeyIDs.ComputeKeyID(pub)
			if err != nil {
				return err
			}
			entry := domain.KeyringEntry{ID: id, Curve: curve.Name(), Label: label, Public: pub}
			if err := appCtx.Keyring.Put(entry, priv, passphrase); err != nil {
				return err
			}
			appCtx.Log.Info("imported key", zap.Stringer("key_id", id), zap.Bool("private", private))
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s\n", id)
			return nil
		},
	}
	cmd.Flags().BoolVar(&private, "private", false, "input is a private key")
	cmd.Flags().BoolVar(&text, "text", false, "input is a hex or base64 string")
	cmd.Flags().StringVar(&label, "label", "", "free-form label stored with the key")
	return cmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List keyring entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := appCtx.Keyring.List()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range entries {
				kind := "pub"
				if e.HasPrivate() {
					kind = "pair"
				}
				fmt.Fprintf(out, "%s  %-6s %-4s %s\n", e.ID, e.Curve, kind, e.Label)
			}
			return nil
		},
	}
}

func showCmd() *cobra.Command {
	var private bool
	cmd := &cobra.Command{
		Use:   "show KEYID",
		Short: "Print one keyring entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseKeyID(args[0])
			if err != nil {
				return err
			}
			e, ok, err := appCtx.Keyring.Get(id)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("key %s not found", id)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Key id:  %s\n", e.ID)
			fmt.Fprintf(out, "Curve:   %s\n", e.Curve)
			if e.Label != "" {
				fmt.Fprintf(out, "Label:   %s\n", e.Label)
			}
			fmt.Fprintf(out, "Created: %s\n", time.Unix(e.CreatedAt, 0).UTC().Format(time.RFC3339))
			fmt.Fprintf(out, "Public:  %s\n", crypto.Hex(e.Public))
			if private {
				priv, err := appCtx.Keyring.Private(id, passphrase)
				if err != nil {
					return err
				}
				defer memzero.Zero(priv)
				fmt.Fprintf(out, "Private: %s\n", crypto.Hex(priv))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&private, "private", false, "also unseal and print the private key")
	return cmd
}

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove KEYID",
		Short: "Delete a keyring entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseKeyID(args[0])
			if err != nil {
				return err
			}
			if err := appCtx.Keyring.Delete(id); err != nil {
				return err
			}
			appCtx.Log.Info("removed key", zap.Stringer("key_id", id))
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", id)
			return nil
		},
	}
}
