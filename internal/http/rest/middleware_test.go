package rest

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/yatrasetgo/packyourbags/config"
)

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func TestVerifyToken(t *testing.T) {
	api := &API{Config: &config.Config{
		JwtSecret:     "access-secret",
		RefreshSecret: "refresh-secret",
	}}

	t.Run("valid access token", func(t *testing.T) {
		tokenString := signTestToken(t, "access-secret", jwt.MapClaims{
			"sub": "user-123",
			"typ": "access",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		claims, err := api.verifyToken(tokenString, false)
		if err != nil {
			t.Fatalf("verifyToken: %v", err)
		}
		if claims.UserID != "user-123" {
			t.Errorf("UserID = %q; want %q", claims.UserID, "user-123")
		}
		if claims.Type != "access" {
			t.Errorf("Type = %q; want %q", claims.Type, "access")
		}
	})

	t.Run("signed token without exp is rejected", func(t *testing.T) {
		tokenString := signTestToken(t, "access-secret", jwt.MapClaims{
			"sub": "user-123",
			"typ": "access",
		})
		if _, err := api.verifyToken(tokenString, false); err == nil {
			t.Error("expected error for token without exp, got nil")
		}
	})

	t.Run("expired token", func(t *testing.T) {
		tokenString := signTestToken(t, "access-secret", jwt.MapClaims{
			"sub": "user-123",
			"typ": "access",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})
		_, err := api.verifyToken(tokenString, false)
		if err == nil || err.Error() != "token expired" {
			t.Errorf("err = %v; want token expired", err)
		}
	})

	t.Run("refresh token rejected on access path", func(t *testing.T) {
		tokenString := signTestToken(t, "refresh-secret", jwt.MapClaims{
			"sub": "user-123",
			"typ": "refresh",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		if _, err := api.verifyToken(tokenString, false); err == nil {
			t.Error("expected error for refresh token on access path, got nil")
		}
	})
}
