package jwt

import (
	"strings"
	"testing"

	"github.com/kerjalink/jobboard-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "24h"
	testRefreshExp = "168h"
)

func newTestService() Service {
	return NewJWTService(testSecret, testAccessExp, testRefreshExp, false)
}

func testClaims() Claims {
	return Claims{
		UserID:       "0198a3c1-5b2f-7c4d-8e9f-1a2b3c4d5e6f",
		Email:        "candidate@example.com",
		FirstName:    "Sari",
		LastName:     "Wijaya",
		MembershipNo: "429497",
		Role:         user.RoleCandidate,
	}
}

func TestAccessToken_RoundTrip_FullPath(t *testing.T) {
	svc := newTestService()

	token, expiresAt, err := svc.GenerateAccessToken(testClaims())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	got, err := svc.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "0198a3c1-5b2f-7c4d-8e9f-1a2b3c4d5e6f", got.UserID)
	assert.Equal(t, "candidate@example.com", got.Email)
	assert.Equal(t, "Sari", got.FirstName)
	assert.Equal(t, "Wijaya", got.LastName)
	assert.Equal(t, "429497", got.MembershipNo)
	assert.Equal(t, user.RoleCandidate, got.Role)
	assert.Equal(t, "access", got.TokenType)
}

func TestAccessToken_RoundTrip_CompactPath(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateAccessToken(testClaims())
	require.NoError(t, err)

	got, err := svc.VerifyCompact(token)
	require.NoError(t, err)
	assert.Equal(t, "0198a3c1-5b2f-7c4d-8e9f-1a2b3c4d5e6f", got.UserID)
	assert.Equal(t, user.RoleCandidate, got.Role)
	assert.Equal(t, "access", got.TokenType)
}

// Both verification paths must reject a token whose signature segment was
// mutated. The compact path performs real signature verification, not just a
// shape check.
func TestTamperedSignature_RejectedByBothPaths(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateAccessToken(testClaims())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.VerifyAccessToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.VerifyCompact(tampered)
	assert.Error(t, err)
}

func TestTamperedPayload_RejectedByBothPaths(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateAccessToken(testClaims())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	// Forge a payload while keeping the original signature
	forged := parts[0] + ".eyJ1c2VyX2lkIjoiZm9yZ2VkIiwidHlwZSI6ImFjY2VzcyIsImV4cCI6OTk5OTk5OTk5OX0." + parts[2]

	_, err = svc.VerifyAccessToken(forged)
	assert.Error(t, err)

	_, err = svc.VerifyCompact(forged)
	assert.Error(t, err)
}

func TestExpiredToken_RejectedByBothPaths(t *testing.T) {
	// Negative lifetime puts exp beyond the acceptable skew in the past
	svc := NewJWTService(testSecret, "-1h", "-1h", false)

	token, _, err := svc.GenerateAccessToken(testClaims())
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.VerifyCompact(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestWrongSecret_RejectedByBothPaths(t *testing.T) {
	svc := newTestService()
	other := NewJWTService("a-completely-different-secret", testAccessExp, testRefreshExp, false)

	token, _, err := svc.GenerateAccessToken(testClaims())
	require.NoError(t, err)

	_, err = other.VerifyAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = other.VerifyCompact(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMalformedToken_Rejected(t *testing.T) {
	svc := newTestService()

	cases := []string{
		"",
		"short",
		"not-a-jwt-token-at-all-but-long-enough-to-pass",
		"one.two",
		"one.two.three.four",
	}
	for _, c := range cases {
		_, err := svc.VerifyCompact(c)
		assert.Error(t, err, "VerifyCompact(%q) should fail", c)

		_, err = svc.VerifyAccessToken(c)
		assert.Error(t, err, "VerifyAccessToken(%q) should fail", c)
	}
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	svc := newTestService()

	token, expiresAt, err := svc.GenerateRefreshToken("0198a3c1-5b2f-7c4d-8e9f-1a2b3c4d5e6f")
	require.NoError(t, err)
	assert.Greater(t, expiresAt, int64(0))

	got, err := svc.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "refresh", got.TokenType)
	assert.Equal(t, "0198a3c1-5b2f-7c4d-8e9f-1a2b3c4d5e6f", got.UserID)

	gotCompact, err := svc.VerifyCompact(token)
	require.NoError(t, err)
	assert.Equal(t, "refresh", gotCompact.TokenType)

	// Back-to-back mints for the same user stay distinct
	second, _, err := svc.GenerateRefreshToken("0198a3c1-5b2f-7c4d-8e9f-1a2b3c4d5e6f")
	require.NoError(t, err)
	assert.NotEqual(t, token, second)
}

func TestCookies(t *testing.T) {
	svc := newTestService()

	token, expiresAt, err := svc.GenerateAccessToken(testClaims())
	require.NoError(t, err)

	access := svc.AccessTokenCookie(token, expiresAt)
	assert.Equal(t, "access_token", access.Name)
	assert.Equal(t, "/", access.Path)
	assert.True(t, access.HttpOnly)
	assert.False(t, access.Secure)

	refresh := svc.RefreshTokenCookie(token, expiresAt)
	assert.Equal(t, "refresh_token", refresh.Name)
	assert.Equal(t, "/api/v1/auth", refresh.Path)

	cleared := svc.ClearedAccessTokenCookie()
	assert.Empty(t, cleared.Value)
	assert.True(t, cleared.Expires.Before(access.Expires))
}
