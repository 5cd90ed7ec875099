package crypto

import (
	"encoding/base64"
	"encoding/hex"
)

// B64 returns standard base64 encoding without newlines.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// Hex returns lower-case hex encoding.
func Hex(b []byte) string { return hex.EncodeToString(b) }

// DecodeText accepts a key written as hex or standard base64.
func DecodeText(s string) ([]byte, error) {
	if b, err := hex.DecodeString(s); err == nil {
		return b, nil
	}
	return base64.StdEncoding.DecodeString(s)
}
