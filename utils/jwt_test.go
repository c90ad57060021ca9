package utils

import (
	"testing"
	"time"

	"hireloop/config"

	"github.com/golang-jwt/jwt"
)

func TestSessionTokens(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("u1", "u1@example.com", "worker", SessionTokenTTL)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	claims, err := ParseSessionToken(token)
	if err != nil {
		t.Fatalf("ParseSessionToken() error = %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "u1@example.com" || claims.Role != "worker" {
		t.Errorf("claims = %+v", claims)
	}

	expired, _ := GenerateToken("u1", "", "", -time.Minute)
	if _, err := ParseSessionToken(expired); err == nil {
		t.Errorf("expired token accepted")
	}

	config.AppConfig.JWTSecret = "rotated"
	if _, err := ParseSessionToken(token); err == nil {
		t.Errorf("token signed with the old secret accepted")
	}

	config.AppConfig.JWTSecret = "test-secret"
	noSub := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "x@example.com"})
	signed, _ := noSub.SignedString([]byte("test-secret"))
	if _, err := ParseSessionToken(signed); err == nil {
		t.Errorf("token without sub accepted")
	}
}
