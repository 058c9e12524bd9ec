package middleware

import (
	"context"
	"net/http"
	"strings"

	jwtinfra "github.com/sheisstarwithoutmoon/SafeLink/internal/infrastructure/jwt"
)

type contextKey string

const ClaimsKey contextKey = "claims"

// Identity returns middleware that attaches verified Bearer claims to the
// request context when a token is present. It never rejects: unauthenticated
// and unverifiable callers are processed identically, since identity belongs
// to an external trust boundary. A nil verifier makes it a pure passthrough.
func Identity(verifier *jwtinfra.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if verifier != nil {
				authHeader := r.Header.Get("Authorization")
				if strings.HasPrefix(authHeader, "Bearer ") {
					tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
					if claims, err := verifier.Verify(tokenStr); err == nil {
						r = r.WithContext(context.WithValue(r.Context(), ClaimsKey, claims))
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClaimsFromContext extracts JWT claims from the request context.
func ClaimsFromContext(ctx context.Context) (*jwtinfra.Claims, bool) {
	c, ok := ctx.Value(ClaimsKey).(*jwtinfra.Claims)
	return c, ok
}
