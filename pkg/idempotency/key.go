// Package idempotency validates client supplied Idempotency-Key values and
// derives the storage keys used to remember the first response per key.
package idempotency

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
)

const (
	HeaderKey      = "Idempotency-Key"
	HeaderReplayed = "Idempotent-Replayed"

	MinKeyLength = 16
	MaxKeyLength = 128
	KeyPrefix    = "idempotency"
)

var (
	ErrKeyTooShort = errors.New("idempotency key must be at least 16 characters")
	ErrKeyTooLong  = errors.New("idempotency key must not exceed 128 characters")
	ErrKeyInvalid  = errors.New("idempotency key contains invalid characters")

	validKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9\-_]+$`)
)

func Validate(key string) error {
	switch {
	case len(key) < MinKeyLength:
		return ErrKeyTooShort
	case len(key) > MaxKeyLength:
		return ErrKeyTooLong
	case !validKeyPattern.MatchString(key):
		return ErrKeyInvalid
	}

	return nil
}

// BuildCacheKey scopes a client key to the method and path it was sent with.
func BuildCacheKey(method, path, idempotencyKey string) string {
	return fmt.Sprintf("%s:%s", KeyPrefix, digest(method, path, idempotencyKey))
}

// BuildLockKey names the short lived lock taken while the first request with
// a key is still in flight.
func BuildLockKey(cacheKey string) string {
	return cacheKey + ":lock"
}

// Fingerprint hashes a request body so a key reused with a different payload
// can be told apart from a genuine retry.
func Fingerprint(body []byte) string {
	return digest(string(body))
}

func digest(parts ...string) string {
	h := sha256.New()

	for i, part := range parts {
		if i > 0 {
			h.Write([]byte{':'})
		}

		h.Write([]byte(part))
	}

	return hex.EncodeToString(h.Sum(nil))
}
