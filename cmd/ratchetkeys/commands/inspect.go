package commands

import (
	"encoding/asn1"
	"fmt"

	"github.com/spf13/cobra"

	"ratchetkeys/internal/crypto"
	"ratchetkeys/internal/keyformat"
	"ratchetkeys/internal/util/memzero"
)

func inspectCmd() *cobra.Command {
	var text bool
	cmd := &cobra.Command{
		Use:   "inspect FILE|-",
		Short: "Report the detected format and whether the blob is a valid key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := readBlob(cmd, args[0], text)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			ex := appCtx.Extractor
			p := ex.Params()

			fmt.Fprintf(out, "length:  %d\n", len(blob))
			fmt.Fprintf(out, "format:  %s\n", ex.Detect(blob))
			fmt.Fprintf(out, "curve:   %s (%d-byte keys, pem %t)\n", p.Curve().Name(), p.KeyLen(), p.AcceptPEM())
			if alg := envelopeAlgorithm(blob, p.AcceptPEM()); alg != "" {
				fmt.Fprintf(out, "envelope: %s\n", alg)
			}

			if pub, err := ex.ExtractPublicKey(blob); err == nil {
				id, err := appCtx.KeyIDs.ComputeKeyID(pub)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "public:  ok, key id %s\n", id)
			} else {
				fmt.Fprintf(out, "public:  %v\n", err)
			}

			if priv, err := ex.ExtractPrivateKey(blob); err == nil {
				pub, err := p.Curve().PublicKey(priv)
				memzero.Zero(priv)
				if err != nil {
					return err
				}
				id, err := appCtx.KeyIDs.ComputeKeyID(pub)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "private: ok, key id %s\n", id)
			} else {
				fmt.Fprintf(out, "private: %v\n", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&text, "text", false, "input is a hex or base64 string")
	return cmd
}

// envelopeAlgorithm names the curve declared by a DER or PEM envelope, or
// its raw OID when the curve is unknown. It returns "" for anything else.
func envelopeAlgorithm(blob []byte, acceptPEM bool) string {
	ders := [][]byte{blob}
	if acceptPEM && keyformat.LooksLikePEM(blob) {
		ders = ders[:0]
		for _, typ := range []string{keyformat.PEMPublicKey, keyformat.PEMPrivateKey} {
			if der, err := keyformat.DecodePEM(blob, typ); err == nil {
				ders = append(ders, der)
			}
		}
	}
	for _, der := range ders {
		var oid asn1.ObjectIdentifier
		if info, err := keyformat.ParsePublicKeyInfo(der); err == nil {
			oid = info.Algorithm
		} else if info, err := keyformat.ParsePrivateKeyInfo(der); err == nil {
			oid = info.Algorithm
		} else {
			continue
		}
		if c, ok := crypto.CurveByOID(oid); ok {
			return c.Name()
		}
		return oid.String()
	}
	return ""
}
