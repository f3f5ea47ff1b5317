// Package auth issues and verifies the signed credentials that protect
// storefront routes. Claims are caller-supplied at issuance time; the only
// claim the rest of the system cares about is "email".
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/methubd/clickdesire-ecom-server/config"
)

// TokenTTL is how long an issued credential stays valid.
const TokenTTL = time.Hour

func secret() []byte {
	return []byte(config.JWTSecret())
}

// IssueToken signs an arbitrary claim payload with the process-wide secret.
// Registered iat/exp claims are injected; everything else passes through
// untouched, so callers may embed any JSON-compatible object.
func IssueToken(claims map[string]interface{}) (string, error) {
	now := time.Now()

	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}
	mc["iat"] = jwt.NewNumericDate(now)
	mc["exp"] = jwt.NewNumericDate(now.Add(TokenTTL))

	return jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString(secret())
}

// ValidateToken parses and validates a credential string. Signature,
// malformed input, and elapsed expiry all fail here.
func ValidateToken(t string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(t, func(tok *jwt.Token) (interface{}, error) {
		return secret(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// Email extracts the canonical account email claim, if present.
func Email(claims jwt.MapClaims) string {
	if email, ok := claims["email"].(string); ok {
		return email
	}
	return ""
}
