package setup

import (
	"encoding/hex"
	"fmt"
	"io"
)

// SecretBytes is the amount of randomness behind NEXTAUTH_SECRET.
const SecretBytes = 32

// GenerateSecret reads SecretBytes from random and returns them as lowercase hex.
func GenerateSecret(random io.Reader) (string, error) {
	buf := make([]byte, SecretBytes)
	if _, err := io.ReadFull(random, buf); err != nil {
		return "", fmt.Errorf("failed to generate secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
