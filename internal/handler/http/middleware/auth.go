package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/kerjalink/jobboard-backend-go/internal/domain/auth"
	"github.com/kerjalink/jobboard-backend-go/internal/handler/http/response"
	"github.com/kerjalink/jobboard-backend-go/internal/pkg/jwt"
)

type identityContextKey struct{}

// AuthRequired verifies the session token and injects the caller's identity
// into the request context. It is the only place tokens are parsed; handlers
// and role gates read the injected identity instead of re-verifying.
//
// The token is taken from the Authorization header when present, falling
// back to the access_token cookie set at login.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			tokenString := tokenFromRequest(r)
			if tokenString == "" {
				response.Unauthorized(w, "Missing authentication token")
				return
			}

			claims, err := jwtService.VerifyCompact(tokenString)
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			if claims.TokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), identityContextKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

func tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if strings.HasPrefix(header, "Bearer ") {
			return strings.TrimPrefix(header, "Bearer ")
		}
		return ""
	}
	if cookie, err := r.Cookie("access_token"); err == nil {
		return cookie.Value
	}
	return ""
}

// IdentityFromContext returns the verified identity injected by AuthRequired.
func IdentityFromContext(ctx context.Context) (jwt.Claims, bool) {
	claims, ok := ctx.Value(identityContextKey{}).(jwt.Claims)
	return claims, ok
}
