package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"smart-hostel/models"
)

// JWTMaker handles HS256 tokens in the shape issued by the hostel identity
// service: identity in "sub", role as an extra claim.
type JWTMaker struct {
	secret []byte
}

func NewJWTMaker(secret string) (*JWTMaker, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required when TOKEN_FORMAT=jwt")
	}
	return &JWTMaker{secret: []byte(secret)}, nil
}

func (m *JWTMaker) GenerateToken(user *models.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID.Hex(),
		"role":  string(user.Role),
		"email": user.Email,
		"iat":   now.Unix(),
		"nbf":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *JWTMaker) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid jwt: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid jwt")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	userID, _ := mapClaims["sub"].(string)
	if userID == "" {
		userID, _ = mapClaims["user_id"].(string)
	}
	email, _ := mapClaims["email"].(string)
	role, _ := mapClaims["role"].(string)

	return newClaims(userID, email, role)
}
