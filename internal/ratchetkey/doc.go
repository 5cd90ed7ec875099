// Package ratchetkey extracts raw Diffie-Hellman keys from serialized key
// blobs and derives 8-byte key-pair identifiers from public keys.
//
// A blob is recognised, in order, as:
//
//  1. a raw key of exactly the curve's native length (returned as a copy),
//  2. a PEM armored envelope, when enabled,
//  3. a DER SubjectPublicKeyInfo / PKCS#8 envelope whose algorithm
//     identifier matches the configured curve.
//
// Anything else fails with ErrMalformedKey; no partial key is ever returned.
// Decoded keys are then checked against the curve: public keys must not be
// low-order or non-canonical points, private scalars must not be zero.
//
// A key id is the first 8 bytes of Hash(publicKey). SHA-512 is the default.
//
// Concurrency: Params, Extractor and KeyIDDeriver are immutable after
// construction and safe for concurrent use.
package ratchetkey
