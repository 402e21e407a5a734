package token

import (
	"fmt"
	"time"

	"github.com/o1egl/paseto"

	"smart-hostel/models"
	util "smart-hostel/pkg/utils"
)

type PasetoMaker struct {
	paseto       *paseto.V2
	symmetricKey []byte
}

func NewPasetoMaker(secretBase64 string) (*PasetoMaker, error) {
	decodedKey, err := util.DecodeBase64Key(secretBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode PASETO_SECRET: %w", err)
	}

	if len(decodedKey) != 32 {
		return nil, fmt.Errorf("PASETO_SECRET must be exactly 32 bytes after Base64 decoding, got %d bytes", len(decodedKey))
	}

	return &PasetoMaker{paseto: paseto.NewV2(), symmetricKey: decodedKey}, nil
}

func (m *PasetoMaker) GenerateToken(user *models.User, ttl time.Duration) (string, error) {
	now := time.Now()

	token := paseto.JSONToken{
		Subject:    user.ID.Hex(),
		IssuedAt:   now,
		Expiration: now.Add(ttl),
		NotBefore:  now,
	}

	token.Set("user_id", user.ID.Hex())
	token.Set("email", user.Email)
	token.Set("role", string(user.Role))

	return m.paseto.Encrypt(m.symmetricKey, token, "")
}

func (m *PasetoMaker) ValidateToken(tokenString string) (*Claims, error) {
	var token paseto.JSONToken
	var footer string

	if err := m.paseto.Decrypt(tokenString, m.symmetricKey, &token, &footer); err != nil {
		return nil, fmt.Errorf("failed to decrypt paseto token: %w", err)
	}

	if err := token.Validate(); err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	userID := token.Get("user_id")
	if userID == "" {
		userID = token.Subject
	}

	return newClaims(userID, token.Get("email"), token.Get("role"))
}
