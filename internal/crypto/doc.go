// Package crypto exposes the curve and hash primitives behind ratchet key
// extraction.
//
// Contents
//
//   - Curve descriptions for X25519 and X448 (native key length, RFC 8410
//     algorithm identifier, public point and private scalar validation,
//     key generation)
//   - Hashers used to derive key-pair identifiers (SHA-512, SHA-256,
//     BLAKE3, HMAC-SHA-512)
//   - Text encodings for printing keys (Hex, B64)
//
// # Notes
//
// Curves and hashers are immutable values; a single instance is shared by
// every caller for the lifetime of the process.
package crypto
