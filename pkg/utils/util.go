package util

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateBase64Key returns size random bytes, base64 URL-encoded. PASETO v2 local
// tokens need exactly 32.
func GenerateBase64Key(size int) (string, error) {
	if size != 32 {
		return "", fmt.Errorf("PASETO v2 local requires a 32-byte key, got %d", size)
	}

	key := make([]byte, size)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("failed to generate random key: %w", err)
	}

	return base64.URLEncoding.EncodeToString(key), nil
}

// DecodeBase64Key accepts the URL, padded URL and standard base64 variants.
func DecodeBase64Key(value string) ([]byte, error) {
	if key, err := base64.URLEncoding.DecodeString(value); err == nil {
		return key, nil
	}
	if key, err := base64.RawURLEncoding.DecodeString(value); err == nil {
		return key, nil
	}
	key, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("not a valid base64 key: %w", err)
	}
	return key, nil
}
