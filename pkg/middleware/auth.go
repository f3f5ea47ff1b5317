package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/methubd/clickdesire-ecom-server/pkg/auth"
	"github.com/methubd/clickdesire-ecom-server/pkg/response"
)

// claimsKey is the unexported key used to store decoded claims in context.
type claimsKey struct{}

// ClaimsFromCtx returns the claims attached by RequireAuth, or nil.
func ClaimsFromCtx(ctx context.Context) jwt.MapClaims {
	if claims, ok := ctx.Value(claimsKey{}).(jwt.MapClaims); ok {
		return claims
	}
	return nil
}

// RequireAuth rejects requests without a bearer credential (401) or with an
// invalid/expired one (403). On success the decoded claims are attached to
// the request context for downstream handlers.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			response.Unauthorized(w)
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Forbidden(w)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RoleFinder looks up the stored role for an account email.
type RoleFinder interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// RequireAdmin composes after RequireAuth: the caller's stored role must be
// exactly "admin", otherwise the chain halts with 403.
func RequireAdmin(users RoleFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := ClaimsFromCtx(r.Context())
			if claims == nil {
				response.Unauthorized(w)
				return
			}

			role, err := users.RoleByEmail(r.Context(), auth.Email(claims))
			if err != nil || role != "admin" {
				response.Forbidden(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
