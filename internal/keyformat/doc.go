// Package keyformat encodes and decodes the tagged key envelopes produced by
// key-export tooling.
//
// Public keys use the RFC 8410 SubjectPublicKeyInfo layout:
//
//	SEQUENCE {
//	  SEQUENCE { OBJECT IDENTIFIER algorithm }
//	  BIT STRING key
//	}
//
// Private keys use the RFC 5958 OneAsymmetricKey layout with an RFC 8410
// CurvePrivateKey payload:
//
//	SEQUENCE {
//	  INTEGER version            -- 0, or 1 when publicKey is present
//	  SEQUENCE { OBJECT IDENTIFIER algorithm }
//	  OCTET STRING { OCTET STRING key }
//	  [0] attributes OPTIONAL
//	  [1] publicKey OPTIONAL
//	}
//
// Both may additionally be wrapped in PEM armor ("PUBLIC KEY" and
// "PRIVATE KEY" blocks). Parsing is strict DER: indefinite or non-minimal
// lengths, trailing bytes and algorithm parameters are rejected.
package keyformat
