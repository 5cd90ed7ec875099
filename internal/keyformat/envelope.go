package keyformat

import (
	encasn1 "encoding/asn1"
	"errors"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

const (
	versionV1 = 0 // RFC 5208 PrivateKeyInfo
	versionV2 = 1 // RFC 5958 OneAsymmetricKey with publicKey
)

var (
	tagAttributes = asn1.Tag(0).ContextSpecific().Constructed()
	tagPublicKey  = asn1.Tag(1).ContextSpecific()
)

// PublicKeyInfo is a decoded SubjectPublicKeyInfo.
type PublicKeyInfo struct {
	Algorithm encasn1.ObjectIdentifier
	Key       []byte
}

// PrivateKeyInfo is a decoded OneAsymmetricKey.
type PrivateKeyInfo struct {
	Version   int64
	Algorithm encasn1.ObjectIdentifier
	Key       []byte
	PublicKey []byte // nil unless the envelope carries one
}

// LooksLikeDER reports whether b starts with a constructed SEQUENCE tag.
func LooksLikeDER(b []byte) bool {
	return len(b) > 0 && b[0] == byte(asn1.SEQUENCE)
}

// ParsePublicKeyInfo decodes der. The returned key aliases der.
func ParsePublicKeyInfo(der []byte) (PublicKeyInfo, error) {
	var info PublicKeyInfo
	input := cryptobyte.String(der)

	var spki cryptobyte.String
	if !input.ReadASN1(&spki, asn1.SEQUENCE) {
		return info, ErrTruncated
	}
	if !input.Empty() {
		return info, ErrTrailingData
	}

	oid, err := readAlgorithm(&spki)
	if err != nil {
		return info, err
	}

	var bits encasn1.BitString
	if !spki.ReadASN1BitString(&bits) || bits.BitLength%8 != 0 {
		return info, ErrTruncated
	}
	if !spki.Empty() {
		return info, ErrTrailingData
	}

	info.Algorithm = oid
	info.Key = bits.Bytes
	return info, nil
}

// ParsePrivateKeyInfo decodes der. The returned keys alias der.
func ParsePrivateKeyInfo(der []byte) (PrivateKeyInfo, error) {
	var info PrivateKeyInfo
	input := cryptobyte.String(der)

	var pki cryptobyte.String
	if !input.ReadASN1(&pki, asn1.SEQUENCE) {
		return info, ErrTruncated
	}
	if !input.Empty() {
		return info, ErrTrailingData
	}

	var version int64
	if !pki.ReadASN1Integer(&version) {
		return info, ErrTruncated
	}
	if version != versionV1 && version != versionV2 {
		return info, ErrUnsupportedVersion
	}

	oid, err := readAlgorithm(&pki)
	if err != nil {
		return info, err
	}

	var wrapped, key cryptobyte.String
	if !pki.ReadASN1(&wrapped, asn1.OCTET_STRING) {
		return info, ErrTruncated
	}
	if !wrapped.ReadASN1(&key, asn1.OCTET_STRING) {
		return info, ErrTruncated
	}
	if !wrapped.Empty() {
		return info, ErrTrailingData
	}

	if !pki.SkipOptionalASN1(tagAttributes) {
		return info, ErrTruncated
	}

	var pub cryptobyte.String
	var hasPub bool
	if !pki.ReadOptionalASN1(&pub, &hasPub, tagPublicKey) {
		return info, ErrTruncated
	}
	if hasPub {
		if version != versionV2 {
			return info, ErrUnsupportedVersion
		}
		// IMPLICIT BIT STRING: leading unused-bits octet must be zero.
		var unused uint8
		if !pub.ReadUint8(&unused) || unused != 0 {
			return info, ErrTruncated
		}
		info.PublicKey = pub
	}
	if !pki.Empty() {
		return info, ErrTrailingData
	}

	info.Version = version
	info.Algorithm = oid
	info.Key = key
	return info, nil
}

// MarshalPublicKeyInfo encodes key as a SubjectPublicKeyInfo.
func MarshalPublicKeyInfo(oid encasn1.ObjectIdentifier, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, errors.New("keyformat: empty public key")
	}
	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		addAlgorithm(b, oid)
		b.AddASN1BitString(key)
	})
	return b.Bytes()
}

// MarshalPrivateKeyInfo encodes key as a OneAsymmetricKey. A non-nil pub is
// embedded and bumps the version to v2.
func MarshalPrivateKeyInfo(oid encasn1.ObjectIdentifier, key, pub []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, errors.New("keyformat: empty private key")
	}
	version := int64(versionV1)
	if pub != nil {
		version = versionV2
	}
	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(version)
		addAlgorithm(b, oid)
		b.AddASN1(asn1.OCTET_STRING, func(b *cryptobyte.Builder) {
			b.AddASN1OctetString(key)
		})
		if pub != nil {
			b.AddASN1(tagPublicKey, func(b *cryptobyte.Builder) {
				b.AddUint8(0)
				b.AddBytes(pub)
			})
		}
	})
	return b.Bytes()
}

func readAlgorithm(s *cryptobyte.String) (encasn1.ObjectIdentifier, error) {
	var alg cryptobyte.String
	var oid encasn1.ObjectIdentifier
	if !s.ReadASN1(&alg, asn1.SEQUENCE) || !alg.ReadASN1ObjectIdentifier(&oid) {
		return nil, ErrTruncated
	}
	if !alg.Empty() {
		return nil, ErrParametersPresent
	}
	return oid, nil
}

func addAlgorithm(b *cryptobyte.Builder, oid encasn1.ObjectIdentifier) {
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1ObjectIdentifier(oid)
	})
}
