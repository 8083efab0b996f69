package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ShortHash returns the first n characters of [Hash], or the full hash when
// n is out of range.
func ShortHash(data []byte, n int) string {
	h := Hash(data)
	if n <= 0 || n > len(h) {
		return h
	}
	return h[:n]
}
