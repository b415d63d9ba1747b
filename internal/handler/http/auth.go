package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/kerjalink/jobboard-backend-go/internal/domain/auth"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/user"
	"github.com/kerjalink/jobboard-backend-go/internal/handler/http/response"
	"github.com/kerjalink/jobboard-backend-go/internal/pkg/jwt"
	"github.com/kerjalink/jobboard-backend-go/internal/pkg/oauth"
)

type AuthHandler interface {
	RegisterCandidate(w http.ResponseWriter, r *http.Request)
	RegisterEmployer(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	LoginCandidate(w http.ResponseWriter, r *http.Request)
	LoginEmployer(w http.ResponseWriter, r *http.Request)
	LoginMIS(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	VerifyEmail(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService    jwt.Service
	authService   auth.AuthService
	googleService oauth.GoogleService
	frontendURL   string
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService, googleService oauth.GoogleService, frontendURL string) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:    jwtService,
		authService:   authService,
		googleService: googleService,
		frontendURL:   frontendURL,
	}
}

func sessionTracking(r *http.Request) auth.SessionTrackingRequest {
	return auth.SessionTrackingRequest{
		UserAgent: r.UserAgent(),
		IPAddress: r.RemoteAddr,
	}
}

// setSessionCookies sets both token cookies after a successful registration
// or login.
func (a *AuthHandlerImpl) setSessionCookies(w http.ResponseWriter, tokenResponse auth.TokenResponse) {
	http.SetCookie(w, a.jwtService.AccessTokenCookie(tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn))
	http.SetCookie(w, a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn))
}

// RegisterCandidate implements AuthHandler.
func (a *AuthHandlerImpl) RegisterCandidate(w http.ResponseWriter, r *http.Request) {
	var registerReq auth.RegisterCandidateRequest

	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("RegisterCandidate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokenResponse, err := a.authService.RegisterCandidate(r.Context(), registerReq, sessionTracking(r))
	if err != nil {
		slog.Error("RegisterCandidate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	a.setSessionCookies(w, tokenResponse)
	slog.Info("Candidate registered successfully")
	response.Created(w, "Candidate registered successfully", tokenResponse)
}

// RegisterEmployer implements AuthHandler.
func (a *AuthHandlerImpl) RegisterEmployer(w http.ResponseWriter, r *http.Request) {
	var registerReq auth.RegisterEmployerRequest

	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("RegisterEmployer decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokenResponse, err := a.authService.RegisterEmployer(r.Context(), registerReq, sessionTracking(r))
	if err != nil {
		slog.Error("RegisterEmployer service error", "error", err)
		response.HandleError(w, err)
		return
	}

	a.setSessionCookies(w, tokenResponse)
	slog.Info("Employer registered successfully")
	response.Created(w, "Employer registered successfully", tokenResponse)
}

func (a *AuthHandlerImpl) loginWithRole(w http.ResponseWriter, r *http.Request, role user.Role) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokenResponse, err := a.authService.LoginWithRole(r.Context(), loginReq, role, sessionTracking(r))
	if err != nil {
		slog.Error("Login service error", "role", role, "error", err)
		response.HandleError(w, err)
		return
	}

	a.setSessionCookies(w, tokenResponse)
	slog.Info("User logged in successfully", "role", role)
	response.SuccessWithMessage(w, "User logged in successfully", tokenResponse)
}

// Login implements AuthHandler. It is the shared candidate/employer entrance;
// back-office accounts must use their own endpoint.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokenResponse, err := a.authService.Login(r.Context(), loginReq, sessionTracking(r))
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	a.setSessionCookies(w, tokenResponse)
	slog.Info("User logged in successfully")
	response.SuccessWithMessage(w, "User logged in successfully", tokenResponse)
}

// LoginCandidate implements AuthHandler.
func (a *AuthHandlerImpl) LoginCandidate(w http.ResponseWriter, r *http.Request) {
	a.loginWithRole(w, r, user.RoleCandidate)
}

// LoginEmployer implements AuthHandler.
func (a *AuthHandlerImpl) LoginEmployer(w http.ResponseWriter, r *http.Request) {
	a.loginWithRole(w, r, user.RoleEmployer)
}

// LoginMIS implements AuthHandler.
func (a *AuthHandlerImpl) LoginMIS(w http.ResponseWriter, r *http.Request) {
	a.loginWithRole(w, r, user.RoleMIS)
}

// LoginWithGoogle implements AuthHandler.
func (a *AuthHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	state := a.googleService.GenerateState(r.UserAgent())
	cookie := &http.Cookie{
		Name:     "state",
		Value:    state,
		Path:     "/api/v1/auth/oauth/callback/google",
		Expires:  time.Now().Add(5 * time.Minute),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
	url := a.googleService.RedirectURL(state)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler.
func (a *AuthHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	// Helper function to redirect to frontend with error
	redirectWithError := func(errorMsg string) {
		redirectURL := fmt.Sprintf("%s/auth/callback/google?error=%s", a.frontendURL, url.QueryEscape(errorMsg))
		http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
	}

	stateReq, err := r.Cookie("state")
	if err != nil {
		slog.Error("State cookie not found", "error", err)
		redirectWithError("state_cookie_not_found")
		return
	}
	errorValue := r.URL.Query().Get("error")
	if errorValue == "access_denied" {
		slog.Error("Google access denied by user", "error", auth.ErrGoogleAccessDeniedByUser)
		redirectWithError("access_denied")
		return
	}
	if errorValue != "" {
		slog.Error("Error in OAuth callback", "error", errorValue)
		redirectWithError(errorValue)
		return
	}

	stateCookie := stateReq.Value
	if stateCookie == "" {
		slog.Error("State cookie is empty", "error", auth.ErrStateCookieEmpty)
		redirectWithError("state_cookie_empty")
		return
	}

	stateParam := r.URL.Query().Get("state")
	if stateParam == "" {
		slog.Error("State parameter is empty", "error", auth.ErrStateParamEmpty)
		redirectWithError("state_param_empty")
		return
	}

	if stateParam != stateCookie {
		slog.Error("State mismatch", "error", auth.ErrStateMismatch)
		redirectWithError("state_mismatch")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		slog.Error("Code value is empty", "error", auth.ErrCodeValueEmpty)
		redirectWithError("code_empty")
		return
	}

	token, err := a.googleService.VerifyToken(r.Context(), code)
	if err != nil {
		slog.Error("Failed to verify token", "error", err)
		redirectWithError("token_verification_failed")
		return
	}

	userGoogle, err := a.googleService.VerifyUser(r.Context(), token)
	if err != nil {
		slog.Error("Failed to verify user", "error", err)
		redirectWithError("user_verification_failed")
		return
	}

	tokenResponse, err := a.authService.LoginWithGoogle(r.Context(), auth.GoogleProfile{
		Email:      userGoogle.Email,
		GoogleID:   userGoogle.GoogleID,
		GivenName:  userGoogle.GivenName,
		FamilyName: userGoogle.FamilyName,
	}, sessionTracking(r))
	if err != nil {
		slog.Error("Failed to login with Google", "error", err)
		redirectWithError("login_failed")
		return
	}

	a.setSessionCookies(w, tokenResponse)
	slog.Info("User logged in successfully via Google OAuth")

	// Redirect to frontend with access token
	redirectURL := fmt.Sprintf("%s/auth/callback/google?access_token=%s&expires_in=%d",
		a.frontendURL,
		url.QueryEscape(tokenResponse.AccessToken),
		tokenResponse.AccessTokenExpiresIn,
	)
	http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
}

// Logout implements AuthHandler. It is idempotent: a request without a
// refresh token still clears both cookies and succeeds, revocation only
// happens when a token was actually presented.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("refresh_token"); err == nil && cookie.Value != "" {
		if err := a.authService.Logout(r.Context(), cookie.Value); err != nil {
			response.HandleError(w, err)
			return
		}
	}

	http.SetCookie(w, a.jwtService.ClearedAccessTokenCookie())
	http.SetCookie(w, a.jwtService.ClearedRefreshTokenCookie())
	response.SuccessWithMessage(w, "User logged out successfully", nil)
}

// RefreshToken implements AuthHandler.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var refreshTokenReq auth.RefreshTokenRequest

	// Cookie first, JSON body as fallback for non-browser clients
	refreshTokenCookie, err := r.Cookie("refresh_token")
	if err == nil && refreshTokenCookie.Value != "" {
		refreshTokenReq.RefreshToken = refreshTokenCookie.Value
	} else {
		if err := json.NewDecoder(r.Body).Decode(&refreshTokenReq); err != nil {
			slog.Error("RefreshToken decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	tokenResponse, err := a.authService.RefreshToken(r.Context(), refreshTokenReq, sessionTracking(r))
	if err != nil {
		slog.Error("RefreshToken service error", "error", err)
		response.HandleError(w, err)
		return
	}

	a.setSessionCookies(w, tokenResponse)
	response.Success(w, tokenResponse)
}

// VerifyEmail implements AuthHandler.
func (a *AuthHandlerImpl) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	verifyReq := auth.VerifyEmailRequest{Token: r.URL.Query().Get("token")}

	if err := a.authService.VerifyEmail(r.Context(), verifyReq); err != nil {
		slog.Error("VerifyEmail service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Email verified successfully", nil)
}
