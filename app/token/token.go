// Package token issues opaque session tokens. Tokens carry no structure;
// they only have to be unguessable, since possession alone proves a session.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const rawLen = 32

// New returns a 64-character hex token from the system CSPRNG.
func New() (string, error) {
	buf := make([]byte, rawLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
