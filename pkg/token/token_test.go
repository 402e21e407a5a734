package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"smart-hostel/models"
	util "smart-hostel/pkg/utils"
)

func testUser(role models.Role) *models.User {
	return &models.User{ID: primitive.NewObjectID(), Email: "warden@hostel.test", Role: role}
}

func TestPasetoRoundTrip(t *testing.T) {
	secret, err := util.GenerateBase64Key(32)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	maker, err := NewMaker(FormatPaseto, secret, "")
	if err != nil {
		t.Fatalf("new maker: %v", err)
	}
	user := testUser(models.RoleWarden)
	tok, err := maker.GenerateToken(user, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := maker.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != user.ID.Hex() || claims.Role != models.RoleWarden || claims.Email != user.Email {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestPasetoRejectsExpiredToken(t *testing.T) {
	secret, _ := util.GenerateBase64Key(32)
	maker, err := NewPasetoMaker(secret)
	if err != nil {
		t.Fatalf("new maker: %v", err)
	}
	tok, err := maker.GenerateToken(testUser(models.RoleStudent), -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := maker.ValidateToken(tok); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestPasetoRejectsShortKey(t *testing.T) {
	if _, err := NewPasetoMaker("c2hvcnQ="); err == nil {
		t.Fatalf("expected error for a key that is not 32 bytes")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	maker, err := NewMaker(FormatJWT, "", "super-secret-key")
	if err != nil {
		t.Fatalf("new maker: %v", err)
	}
	user := testUser(models.RoleSecurity)
	tok, err := maker.GenerateToken(user, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := maker.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != user.ID.Hex() || claims.Role != models.RoleSecurity {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestJWTDefaultsMissingRoleToStudent(t *testing.T) {
	secret := "super-secret-key"
	maker, _ := NewJWTMaker(secret)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "665f1c2e8b3f4a2d9c0e1a00",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	claims, err := maker.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Role != models.RoleStudent {
		t.Fatalf("expected student role, got %s", claims.Role)
	}
}

func TestJWTRejectsWrongSecretAndUnknownRole(t *testing.T) {
	issuer, _ := NewJWTMaker("issuer-secret")
	verifier, _ := NewJWTMaker("other-secret")
	tok, _ := issuer.GenerateToken(testUser(models.RoleWarden), time.Hour)
	if _, err := verifier.ValidateToken(tok); err == nil {
		t.Fatalf("expected signature mismatch to fail")
	}

	odd, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "abc",
		"role": "janitor",
	}).SignedString([]byte("issuer-secret"))
	_, err := issuer.ValidateToken(odd)
	if err == nil || !strings.Contains(err.Error(), "unknown role") {
		t.Fatalf("expected unknown role error, got %v", err)
	}
}

func TestNewMakerRejectsUnknownFormat(t *testing.T) {
	if _, err := NewMaker("saml", "", ""); err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if _, err := NewMaker(FormatJWT, "", ""); err == nil {
		t.Fatalf("expected error for missing jwt secret")
	}
}
