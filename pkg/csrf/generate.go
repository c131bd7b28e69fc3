package csrf

import (
	"crypto/rand"
	"fmt"
)

// SecretLength is the size in bytes of a canonical secret. Masked tokens
// decode to exactly twice this length, raw tokens to exactly this length.
const SecretLength = 32

// generateSecret draws a fresh canonical secret from the system CSPRNG.
// A failing random source is unrecoverable: request handling cannot proceed
// safely without entropy, so this panics instead of returning an error.
func generateSecret() []byte {
	return randomBytes(SecretLength)
}

func randomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("csrf: secure random source unavailable: %v", err))
	}
	return b
}
