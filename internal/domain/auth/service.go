package auth

import (
	"context"

	"github.com/kerjalink/jobboard-backend-go/internal/domain/user"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	RegisterCandidate(ctx context.Context, req RegisterCandidateRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)
	RegisterEmployer(ctx context.Context, req RegisterEmployerRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)

	// Login authenticates candidates and employers. The role-specific
	// variants additionally reject accounts whose role does not match.
	Login(ctx context.Context, req LoginRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)
	LoginWithRole(ctx context.Context, req LoginRequest, role user.Role, sessionReq SessionTrackingRequest) (TokenResponse, error)
	LoginWithGoogle(ctx context.Context, profile GoogleProfile, sessionReq SessionTrackingRequest) (TokenResponse, error)

	Logout(ctx context.Context, refreshToken string) error

	// RefreshToken rotates the session: the presented refresh token is
	// revoked and a fresh token pair is issued.
	RefreshToken(ctx context.Context, req RefreshTokenRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)
	VerifyEmail(ctx context.Context, req VerifyEmailRequest) error
}
