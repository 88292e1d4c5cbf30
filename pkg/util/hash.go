package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashConfig returns the hex SHA-256 digest of a configuration text.
// Used as the stable identity of a config snapshot in the result store
// and audit log.
func HashConfig(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
