package utils

import (
	"crypto/rand"
	"encoding/base32"
)

// GenerateID returns a fresh opaque identifier: 20 random bytes,
// base32-encoded without padding (32 ASCII characters). Used for both
// client and room identities.
func GenerateID() string {
	b := make([]byte, 20)
	rand.Read(b)
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(b)
}
