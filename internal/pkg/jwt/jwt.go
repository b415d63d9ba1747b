package jwt

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/user"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var (
	ErrMalformedToken = errors.New("malformed token")
	ErrInvalidToken   = errors.New("invalid or expired token")
)

// minTokenLength rejects obviously truncated tokens before any parsing.
const minTokenLength = 32

const acceptableSkew = 30 * time.Second

// Claims is the identity payload carried by a session token.
type Claims struct {
	UserID       string
	Email        string
	FirstName    string
	LastName     string
	MembershipNo string
	Role         user.Role
	TokenType    string // "access" or "refresh"
}

type Service interface {
	GenerateAccessToken(c Claims) (token string, expiresAt int64, err error)
	GenerateRefreshToken(userID string) (token string, expiresAt int64, err error)
	// VerifyAccessToken is the full verification path: signature and expiry
	// via the jwx library.
	VerifyAccessToken(tokenString string) (Claims, error)
	// VerifyCompact verifies the same contract using only stdlib primitives
	// (HMAC-SHA256, base64, json) so it can run in a restricted runtime.
	// Both paths must agree on validity for any token.
	VerifyCompact(tokenString string) (Claims, error)
	JWTAuth() *jwtauth.JWTAuth
	AccessTokenCookie(token string, expiresAt int64) *http.Cookie
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
	ClearedAccessTokenCookie() *http.Cookie
	ClearedRefreshTokenCookie() *http.Cookie
}

type JWTService struct {
	secretKey                  string
	accessTokenExpirationTime  string
	refreshTokenExpirationTime string
	secureCookies              bool
	tokenAuth                  *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, refreshTokenExpirationTime string, secureCookies bool) Service {
	return &JWTService{
		secretKey:                  secretKey,
		accessTokenExpirationTime:  accessTokenExpirationTime,
		refreshTokenExpirationTime: refreshTokenExpirationTime,
		secureCookies:              secureCookies,
		tokenAuth:                  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(acceptableSkew)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(c Claims) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	now := time.Now()
	expiresAt = now.Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id":   c.UserID,
		"email":     c.Email,
		"role":      string(c.Role),
		"user_type": string(c.Role),
		"type":      "access",
		"iat":       now.Unix(),
		"exp":       expiresAt,
	}
	if c.FirstName != "" {
		claims["first_name"] = c.FirstName
	}
	if c.LastName != "" {
		claims["last_name"] = c.LastName
	}
	if c.MembershipNo != "" {
		claims["membership_no"] = c.MembershipNo
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(userID string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.refreshTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	now := time.Now()
	expiresAt = now.Add(expDuration).Unix()
	// jti keeps tokens minted within the same second distinct; the refresh
	// token store is keyed by token hash.
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"type":    "refresh",
		"jti":     uuid.NewString(),
		"iat":     now.Unix(),
		"exp":     expiresAt,
	})
	return tokenString, expiresAt, err
}

// VerifyAccessToken implements the full verification path.
func (j *JWTService) VerifyAccessToken(tokenString string) (Claims, error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	claims := Claims{
		UserID:       getStringClaim(token, "user_id"),
		Email:        getStringClaim(token, "email"),
		FirstName:    getStringClaim(token, "first_name"),
		LastName:     getStringClaim(token, "last_name"),
		MembershipNo: getStringClaim(token, "membership_no"),
		Role:         user.Role(getStringClaim(token, "role")),
		TokenType:    getStringClaim(token, "type"),
	}
	if claims.UserID == "" || claims.TokenType == "" {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}

func getStringClaim(token jwt.Token, key string) string {
	v, ok := token.Get(key)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

type compactPayload struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	MembershipNo string `json:"membership_no"`
	Role         string `json:"role"`
	Type         string `json:"type"`
	Exp          int64  `json:"exp"`
}

// VerifyCompact implements the edge verification path without the jwx
// library. It still performs real HMAC-SHA256 signature verification, so a
// token that fails the full path also fails here and vice versa.
func (j *JWTService) VerifyCompact(tokenString string) (Claims, error) {
	if len(tokenString) < minTokenLength {
		return Claims{}, ErrMalformedToken
	}
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return Claims{}, ErrMalformedToken
	}

	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return Claims{}, ErrMalformedToken
	}
	mac := hmac.New(sha256.New, []byte(j.secretKey))
	mac.Write([]byte(parts[0] + "." + parts[1]))
	if !hmac.Equal(sig, mac.Sum(nil)) {
		return Claims{}, ErrInvalidToken
	}

	payloadBytes, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return Claims{}, ErrMalformedToken
	}
	var payload compactPayload
	if err := json.Unmarshal(payloadBytes, &payload); err != nil {
		return Claims{}, ErrMalformedToken
	}

	if payload.Exp == 0 || time.Now().Add(-acceptableSkew).Unix() > payload.Exp {
		return Claims{}, ErrInvalidToken
	}
	if payload.UserID == "" || payload.Type == "" {
		return Claims{}, ErrInvalidToken
	}

	return Claims{
		UserID:       payload.UserID,
		Email:        payload.Email,
		FirstName:    payload.FirstName,
		LastName:     payload.LastName,
		MembershipNo: payload.MembershipNo,
		Role:         user.Role(payload.Role),
		TokenType:    payload.Type,
	}, nil
}

func (j *JWTService) AccessTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   j.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

func (j *JWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/api/v1/auth",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   j.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

func (j *JWTService) ClearedAccessTokenCookie() *http.Cookie {
	return &http.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   j.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

func (j *JWTService) ClearedRefreshTokenCookie() *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/api/v1/auth",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   j.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}
