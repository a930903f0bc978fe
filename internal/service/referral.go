package service

import (
	"crypto/rand"
	"fmt"
)

// generateCode returns a random code of upper-case letters and digits.
func generateCode(length int) (string, error) {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	code := make([]byte, length)
	randomBytes := make([]byte, length)

	_, err := rand.Read(randomBytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	for i := range code {
		code[i] = charset[int(randomBytes[i])%len(charset)]
	}

	return string(code), nil
}
