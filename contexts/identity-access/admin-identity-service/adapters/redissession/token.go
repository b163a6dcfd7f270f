package redissession

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// TokenGenerator implements ports.IDGenerator with 256-bit random bearer
// tokens. Session tokens are credentials, so they use crypto/rand rather
// than UUIDs.
type TokenGenerator struct{}

func (TokenGenerator) NewID(_ context.Context) (string, error) {
	const size = 32 // 256 bits

	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("session: generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
