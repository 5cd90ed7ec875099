package keyformat

import (
	"bytes"
	"encoding/pem"
	"fmt"
)

// PEM block types for the two envelopes.
const (
	PEMPublicKey  = "PUBLIC KEY"
	PEMPrivateKey = "PRIVATE KEY"
)

var pemPrefix = []byte("-----BEGIN ")

// LooksLikePEM reports whether b starts, after optional whitespace, with a
// PEM header line.
func LooksLikePEM(b []byte) bool {
	return bytes.HasPrefix(bytes.TrimLeft(b, " \t\r\n"), pemPrefix)
}

// DecodePEM returns the DER body of the single PEM block in b. The block
// must be of blockType, carry no headers, and be followed only by whitespace.
func DecodePEM(b []byte, blockType string) ([]byte, error) {
	block, rest := pem.Decode(b)
	if block == nil {
		return nil, ErrNotPEM
	}
	if block.Type != blockType {
		return nil, fmt.Errorf("%w: got %q, want %q", ErrPEMType, block.Type, blockType)
	}
	if len(block.Headers) != 0 {
		return nil, fmt.Errorf("%w: encrypted or annotated blocks are not supported", ErrPEMType)
	}
	if len(bytes.TrimSpace(rest)) != 0 {
		return nil, ErrTrailingData
	}
	return block.Bytes, nil
}

// EncodePEM armors der as a blockType PEM block.
func EncodePEM(blockType string, der []byte) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})
}
