package crypto

import (
	"crypto/hmac"
	"crypto/sha512"
	"fmt"
	"strings"

	sha256 "github.com/minio/sha256-simd"
	"lukechampine.com/blake3"
)

// Hash names accepted by NewHasher.
const (
	HashSHA512     = "sha512"
	HashSHA256     = "sha256"
	HashBLAKE3     = "blake3"
	HashHMACSHA512 = "hmac-sha512"
)

// blake3KeySize is the key length of BLAKE3's keyed mode.
const blake3KeySize = 32

// Hasher is the primitive key ids are truncated from.
// Implementations keep no per-call state and are safe for concurrent use.
type Hasher interface {
	Name() string
	// Sum returns the digest of data; it is at least 32 bytes long.
	Sum(data []byte) []byte
}

// NewHasher returns the hasher registered under name. key is required for
// hmac-sha512, optional for blake3 (32 bytes) and rejected otherwise.
func NewHasher(name string, key []byte) (Hasher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", HashSHA512:
		if len(key) > 0 {
			return nil, fmt.Errorf("hash %s does not take a key", HashSHA512)
		}
		return SHA512, nil
	case HashSHA256:
		if len(key) > 0 {
			return nil, fmt.Errorf("hash %s does not take a key", HashSHA256)
		}
		return SHA256, nil
	case HashBLAKE3:
		if len(key) == 0 {
			return BLAKE3, nil
		}
		if len(key) != blake3KeySize {
			return nil, fmt.Errorf("hash %s: key must be %d bytes, got %d", HashBLAKE3, blake3KeySize, len(key))
		}
		return blake3Hasher{key: append([]byte(nil), key...)}, nil
	case HashHMACSHA512:
		if len(key) == 0 {
			return nil, fmt.Errorf("hash %s requires a key", HashHMACSHA512)
		}
		return hmacHasher{key: append([]byte(nil), key...)}, nil
	default:
		return nil, fmt.Errorf("unknown hash %q", name)
	}
}

var (
	// SHA512 is the default key-id hash.
	SHA512 Hasher = sha512Hasher{}
	// SHA256 uses the SIMD-accelerated SHA-256.
	SHA256 Hasher = sha256Hasher{}
	// BLAKE3 is unkeyed BLAKE3-256.
	BLAKE3 Hasher = blake3Hasher{}
)

type sha512Hasher struct{}

func (sha512Hasher) Name() string { return HashSHA512 }

func (sha512Hasher) Sum(data []byte) []byte {
	sum := sha512.Sum512(data)
	return sum[:]
}

type sha256Hasher struct{}

func (sha256Hasher) Name() string { return HashSHA256 }

func (sha256Hasher) Sum(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

type blake3Hasher struct {
	key []byte
}

func (blake3Hasher) Name() string { return HashBLAKE3 }

func (h blake3Hasher) Sum(data []byte) []byte {
	if h.key == nil {
		sum := blake3.Sum256(data)
		return sum[:]
	}
	d := blake3.New(32, h.key)
	_, _ = d.Write(data)
	return d.Sum(nil)
}

type hmacHasher struct {
	key []byte
}

func (hmacHasher) Name() string { return HashHMACSHA512 }

func (h hmacHasher) Sum(data []byte) []byte {
	m := hmac.New(sha512.New, h.key)
	_, _ = m.Write(data)
	return m.Sum(nil)
}
