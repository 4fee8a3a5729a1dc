package crypto

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength        = 16
	keyLength         = 64
	DefaultIterations = 10000
)

// Hasher derives salted PBKDF2-SHA512 password hashes stored as "salt:digest"
// with both parts hex-encoded.
type Hasher struct {
	iterations int
}

func NewHasher(iterations int) *Hasher {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return &Hasher{iterations: iterations}
}

func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	digest := pbkdf2.Key([]byte(password), salt, h.iterations, keyLength, sha512.New)

	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(digest), nil
}

// Verify re-derives the digest with the stored salt and compares in constant
// time. A malformed stored hash fails closed.
func (h *Hasher) Verify(password, stored string) bool {
	salt, digest, ok := strings.Cut(stored, ":")
	if !ok {
		return false
	}

	saltBytes, err := hex.DecodeString(salt)
	if err != nil {
		return false
	}
	digestBytes, err := hex.DecodeString(digest)
	if err != nil {
		return false
	}

	candidate := pbkdf2.Key([]byte(password), saltBytes, h.iterations, keyLength, sha512.New)

	return subtle.ConstantTimeCompare(candidate, digestBytes) == 1
}
