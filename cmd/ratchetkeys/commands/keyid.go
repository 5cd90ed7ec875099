package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func keyIDCmd() *cobra.Command {
	var private, text bool
	cmd := &cobra.Command{
		Use:   "keyid FILE|-",
		Short: "Print the 8-byte key-pair id of a key blob",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := readBlob(cmd, args[0], text)
			if err != nil {
				return err
			}
			extract := appCtx.Extractor.PublicKeyID
			if private {
				extract = appCtx.Extractor.PrivateKeyID
			}
			id, err := extract(blob)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
	cmd.Flags().BoolVar(&private, "private", false, "input is a private key; print the id of its public half")
	cmd.Flags().BoolVar(&text, "text", false, "input is a hex or base64 string")
	return cmd
}
