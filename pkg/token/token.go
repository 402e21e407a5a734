// Package token verifies the bearer tokens issued by the identity provider.
package token

import (
	"fmt"
	"strings"
	"time"

	"smart-hostel/models"
)

const (
	FormatPaseto = "paseto"
	FormatJWT    = "jwt"
)

// Claims is the authenticated caller as carried by a token.
type Claims struct {
	UserID string      `json:"user_id"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
}

type Verifier interface {
	ValidateToken(tokenString string) (*Claims, error)
}

// Maker issues tokens as well. Only the seeder and tests issue tokens here.
type Maker interface {
	Verifier
	GenerateToken(user *models.User, ttl time.Duration) (string, error)
}

func NewMaker(format, pasetoSecret, jwtSecret string) (Maker, error) {
	switch strings.ToLower(format) {
	case "", FormatPaseto:
		return NewPasetoMaker(pasetoSecret)
	case FormatJWT:
		return NewJWTMaker(jwtSecret)
	default:
		return nil, fmt.Errorf("unknown token format %q", format)
	}
}

func newClaims(userID, email, role string) (*Claims, error) {
	if userID == "" {
		return nil, fmt.Errorf("token has no subject")
	}
	r := models.Role(strings.ToLower(role))
	if r == "" {
		r = models.RoleStudent
	}
	if !r.Valid() {
		return nil, fmt.Errorf("token carries unknown role %q", role)
	}
	return &Claims{UserID: userID, Email: email, Role: r}, nil
}
