package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns the hex-encoded SHA-256 digest of the UTF-8 bytes of
// text. It is used both as the embedding cache key and as the stored document
// id, so identical content always maps to the same record. No normalization
// is applied before hashing; callers trim first if they want trimmed-equal
// texts to collide.
func Fingerprint(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
