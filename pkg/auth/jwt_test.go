package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/methubd/clickdesire-ecom-server/config"
	"github.com/methubd/clickdesire-ecom-server/pkg/auth"
)

func TestIssueAndValidate(t *testing.T) {
	token, err := auth.IssueToken(map[string]interface{}{"email": "a@x.com"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if got := auth.Email(claims); got != "a@x.com" {
		t.Errorf("email claim = %q, want a@x.com", got)
	}
}

func TestClaimsWithoutEmail(t *testing.T) {
	token, err := auth.IssueToken(map[string]interface{}{"plan": "trial", "seats": 3})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if auth.Email(claims) != "" {
		t.Error("expected empty email for email-less claims")
	}
	if claims["plan"] != "trial" {
		t.Errorf("plan claim = %v, want trial", claims["plan"])
	}
}

func TestExpiredTokenFails(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@x.com",
		"exp":   jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	token, err := expired.SignedString([]byte(config.JWTSecret()))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := auth.ValidateToken(token); err == nil {
		t.Error("expected expired token to fail validation")
	}
}

func TestMalformedTokenFails(t *testing.T) {
	if _, err := auth.ValidateToken("not.a.token"); err == nil {
		t.Error("expected malformed token to fail validation")
	}
}

func TestWrongSecretFails(t *testing.T) {
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@x.com",
		"exp":   jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := forged.SignedString([]byte("some-other-secret"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := auth.ValidateToken(token); err == nil {
		t.Error("expected token signed with wrong secret to fail")
	}
}
