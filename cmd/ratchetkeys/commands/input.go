package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"ratchetkeys/internal/crypto"
)

// readBlob reads the key blob named by arg ("-" for stdin). With text set
// the input is a hex or base64 string instead of binary.
func readBlob(cmd *cobra.Command, arg string, text bool) ([]byte, error) {
	var (
		b   []byte
		err error
	)
	if arg == "-" {
		b, err = io.ReadAll(cmd.InOrStdin())
	} else {
		b, err = os.ReadFile(arg)
	}
	if err != nil {
		return nil, err
	}
	if !text {
		return b, nil
	}
	decoded, err := crypto.DecodeText(string(bytes.TrimSpace(b)))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", arg, err)
	}
	return decoded, nil
}

// writeKey prints key in the requested encoding.
func writeKey(cmd *cobra.Command, key []byte, encoding string) error {
	out := cmd.OutOrStdout()
	switch encoding {
	case "hex":
		_, err := fmt.Fprintln(out, crypto.Hex(key))
		return err
	case "base64":
		_, err := fmt.Fprintln(out, crypto.B64(key))
		return err
	case "raw":
		_, err := out.Write(key)
		return err
	default:
		return fmt.Errorf("unknown output encoding %q (hex, base64, raw)", encoding)
	}
}

// writeNew creates path and writes b to it. It never replaces an existing
// file and removes its own partial output on failure.
func writeNew(path string, b []byte, mode os.FileMode) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	if _, err = f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
