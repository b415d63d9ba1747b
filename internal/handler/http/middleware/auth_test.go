package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kerjalink/jobboard-backend-go/internal/domain/user"
	"github.com/kerjalink/jobboard-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func newTestJWTService() jwt.Service {
	return jwt.NewJWTService(testSecret, "1h", "24h", false)
}

func mintAccessToken(t *testing.T, svc jwt.Service, role user.Role) string {
	token, _, err := svc.GenerateAccessToken(jwt.Claims{
		UserID: "0198f6a1-0000-7000-8000-000000000001",
		Email:  "siti@example.com",
		Role:   role,
	})
	require.NoError(t, err)
	return token
}

// okHandler records the identity AuthRequired injected.
func okHandler(t *testing.T, gotClaims *jwt.Claims) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := IdentityFromContext(r.Context())
		require.True(t, ok)
		*gotClaims = claims
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthRequired_BearerHeader(t *testing.T) {
	svc := newTestJWTService()
	token := mintAccessToken(t, svc, user.RoleCandidate)

	var got jwt.Claims
	handler := AuthRequired(svc)(okHandler(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "siti@example.com", got.Email)
	assert.Equal(t, user.RoleCandidate, got.Role)
	assert.Equal(t, "access", got.TokenType)
}

func TestAuthRequired_CookieFallback(t *testing.T) {
	svc := newTestJWTService()
	token := mintAccessToken(t, svc, user.RoleEmployer)

	var got jwt.Claims
	handler := AuthRequired(svc)(okHandler(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.RoleEmployer, got.Role)
}

func TestAuthRequired_MissingToken(t *testing.T) {
	svc := newTestJWTService()
	handler := AuthRequired(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_MalformedToken(t *testing.T) {
	svc := newTestJWTService()
	handler := AuthRequired(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a malformed token")
	}))

	for _, token := range []string{
		"not-a-jwt",
		"aaaa.bbbb.cccc.dddd-definitely-not-three-parts",
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
}

func TestAuthRequired_TamperedSignature(t *testing.T) {
	svc := newTestJWTService()
	other := jwt.NewJWTService("a-completely-different-secret-key", "1h", "24h", false)

	token, _, err := other.GenerateAccessToken(jwt.Claims{
		UserID: "0198f6a1-0000-7000-8000-000000000002",
		Email:  "mallory@example.com",
		Role:   user.RoleMIS,
	})
	require.NoError(t, err)

	handler := AuthRequired(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a foreign signature")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_RejectsRefreshToken(t *testing.T) {
	svc := newTestJWTService()
	token, _, err := svc.GenerateRefreshToken("0198f6a1-0000-7000-8000-000000000003")
	require.NoError(t, err)

	handler := AuthRequired(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("refresh tokens must not open a session")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	svc := newTestJWTService()

	gates := map[string]func(http.Handler) http.Handler{
		"candidate": func(next http.Handler) http.Handler { return RequireCandidate(next) },
		"employer":  func(next http.Handler) http.Handler { return RequireEmployer(next) },
		"mis":       func(next http.Handler) http.Handler { return RequireMIS(next) },
	}
	roles := map[string]user.Role{
		"candidate": user.RoleCandidate,
		"employer":  user.RoleEmployer,
		"mis":       user.RoleMIS,
	}

	for gateName, gate := range gates {
		for roleName, role := range roles {
			token := mintAccessToken(t, svc, role)
			handler := AuthRequired(svc)(gate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if gateName == roleName {
				assert.Equal(t, http.StatusOK, rec.Code, "%s gate should admit %s", gateName, roleName)
			} else {
				assert.Equal(t, http.StatusForbidden, rec.Code, "%s gate should reject %s", gateName, roleName)
			}
		}
	}
}

func TestRequireRole_WithoutIdentity(t *testing.T) {
	handler := RequireCandidate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("role gate must not run without an identity")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
