package middleware

import (
	"net/http"

	"github.com/kerjalink/jobboard-backend-go/internal/domain/user"
	"github.com/kerjalink/jobboard-backend-go/internal/handler/http/response"
)

// RequireCandidate requires the candidate role
func RequireCandidate(next http.Handler) http.Handler {
	return requireRole(next, user.RoleCandidate, user.ErrCandidateAccessRequired)
}

// RequireEmployer requires the employer role
func RequireEmployer(next http.Handler) http.Handler {
	return requireRole(next, user.RoleEmployer, user.ErrEmployerAccessRequired)
}

// RequireMIS requires the internal back-office role
func RequireMIS(next http.Handler) http.Handler {
	return requireRole(next, user.RoleMIS, user.ErrMISAccessRequired)
}

func requireRole(next http.Handler, role user.Role, gateErr error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok || identity.Role != role {
			response.HandleError(w, gateErr)
			return
		}
		next.ServeHTTP(w, r)
	})
}
