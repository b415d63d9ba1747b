package auth

import "errors"

var (
	ErrInvalidCredentials         = errors.New("invalid email or password")
	ErrEmailAlreadyExists         = errors.New("email already registered")
	ErrAccountInactive            = errors.New("account is inactive")
	ErrWrongRoleForLogin          = errors.New("account role not allowed on this login endpoint")
	ErrEmailNotVerified           = errors.New("email not verified")
	ErrInvalidToken               = errors.New("invalid or expired token")
	ErrTokenExpired               = errors.New("token has expired")
	ErrRefreshTokenRevoked        = errors.New("refresh token has been revoked")
	ErrRefreshTokenCookieNotFound = errors.New("refresh token cookie not found")
	ErrRefreshTokenCookieEmpty    = errors.New("refresh token cookie is empty")
	ErrUserNotFound               = errors.New("user not found")
	ErrVerificationTokenNotFound  = errors.New("verification token not found")

	// OAuth flow errors
	ErrGoogleAccessDeniedByUser = errors.New("google access denied by user")
	ErrStateCookieEmpty         = errors.New("state cookie is empty")
	ErrStateParamEmpty          = errors.New("state parameter is empty")
	ErrStateMismatch            = errors.New("state parameter does not match state cookie")
	ErrCodeValueEmpty           = errors.New("authorization code is empty")
)
