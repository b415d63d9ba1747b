package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/auth"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/candidate"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/company"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/employer"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/user"
	"github.com/kerjalink/jobboard-backend-go/internal/pkg/database"
	"github.com/kerjalink/jobboard-backend-go/internal/pkg/email"
	"github.com/kerjalink/jobboard-backend-go/internal/pkg/jwt"
	"github.com/kerjalink/jobboard-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db            *database.DB
	userRepo      user.UserRepository
	candidateRepo candidate.CandidateRepository
	companyRepo   company.CompanyRepository
	employerRepo  employer.EmployerRepository
	jwtRepo       postgresql.JWTRepository
	jwtService    jwt.Service
	emailService  email.EmailService
	frontendURL   string
}

func NewAuthService(
	db *database.DB,
	userRepo user.UserRepository,
	candidateRepo candidate.CandidateRepository,
	companyRepo company.CompanyRepository,
	employerRepo employer.EmployerRepository,
	jwtRepo postgresql.JWTRepository,
	jwtService jwt.Service,
	emailService email.EmailService,
	frontendURL string,
) auth.AuthService {
	return &AuthServiceImpl{
		db:            db,
		userRepo:      userRepo,
		candidateRepo: candidateRepo,
		companyRepo:   companyRepo,
		employerRepo:  employerRepo,
		jwtRepo:       jwtRepo,
		jwtService:    jwtService,
		emailService:  emailService,
		frontendURL:   frontendURL,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// claimsFor builds the token identity payload for a user. Candidates carry
// their membership number so it travels with every request.
func (a *AuthServiceImpl) claimsFor(ctx context.Context, u user.User) (jwt.Claims, error) {
	claims := jwt.Claims{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
	}
	if u.FirstName != nil {
		claims.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		claims.LastName = *u.LastName
	}

	if u.IsCandidate() {
		c, err := a.candidateRepo.GetByUserID(ctx, u.ID)
		if err != nil {
			return jwt.Claims{}, fmt.Errorf("failed to get candidate profile: %w", err)
		}
		claims.MembershipNo = c.MembershipNo
	}
	return claims, nil
}

// mintTokens generates an access/refresh token pair and persists the refresh
// token inside the surrounding transaction.
func (a *AuthServiceImpl) mintTokens(ctx context.Context, claims jwt.Claims, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse
	var err error

	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.jwtService.GenerateAccessToken(claims)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.jwtService.GenerateRefreshToken(claims.UserID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	err = a.jwtRepo.CreateRefreshToken(ctx, claims.UserID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionReq)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to save refresh token to database: %w", err)
	}
	return tokenResponse, nil
}

// RegisterCandidate implements auth.AuthService.
func (a *AuthServiceImpl) RegisterCandidate(ctx context.Context, req auth.RegisterCandidateRequest, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	_, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return auth.TokenResponse{}, auth.ErrEmailAlreadyExists
	}
	if err != pgx.ErrNoRows {
		return auth.TokenResponse{}, fmt.Errorf("failed to check email: %w", err)
	}

	passwordHash, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	verificationToken := uuid.NewString()

	var tokenResponse auth.TokenResponse
	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		newUser := user.User{
			Email:                  req.Email,
			PasswordHash:           &passwordHash,
			Role:                   user.RoleCandidate,
			FirstName:              &req.FirstName,
			EmailVerificationToken: &verificationToken,
			IsActive:               true,
		}
		if req.LastName != "" {
			newUser.LastName = &req.LastName
		}

		createdUser, err := a.userRepo.Create(txCtx, newUser)
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		membershipNo, err := candidate.DeriveMembershipNo(createdUser.ID)
		if err != nil {
			return fmt.Errorf("failed to derive membership number: %w", err)
		}

		newCandidate := candidate.Candidate{
			UserID:         createdUser.ID,
			MembershipNo:   membershipNo,
			ApprovalStatus: candidate.ApprovalPending,
		}
		if req.Phone != "" {
			newCandidate.Phone = &req.Phone
		}

		createdCandidate, err := a.candidateRepo.Create(txCtx, newCandidate)
		if err != nil {
			return fmt.Errorf("failed to create candidate profile: %w", err)
		}

		claims := jwt.Claims{
			UserID:       createdUser.ID,
			Email:        createdUser.Email,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			MembershipNo: createdCandidate.MembershipNo,
			Role:         user.RoleCandidate,
		}
		tokenResponse, err = a.mintTokens(txCtx, claims, sessionReq)
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	// Best-effort: registration already succeeded, a failed email only gets
	// logged.
	if a.emailService != nil {
		verificationLink := fmt.Sprintf("%s/verify-email?token=%s", a.frontendURL, verificationToken)
		if err := a.emailService.SendEmailVerification(req.Email, req.FirstName, verificationLink); err != nil {
			slog.Error("Failed to send verification email", "email", req.Email, "error", err)
		}
	}

	return tokenResponse, nil
}

// RegisterEmployer implements auth.AuthService. The employer's company is
// created pending; job posting and interview invitations stay locked until
// MIS approves it.
func (a *AuthServiceImpl) RegisterEmployer(ctx context.Context, req auth.RegisterEmployerRequest, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	_, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return auth.TokenResponse{}, auth.ErrEmailAlreadyExists
	}
	if err != pgx.ErrNoRows {
		return auth.TokenResponse{}, fmt.Errorf("failed to check email: %w", err)
	}

	slugTaken, err := a.companyRepo.ExistsBySlug(ctx, req.CompanySlug)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to check company slug: %w", err)
	}
	if slugTaken {
		return auth.TokenResponse{}, company.ErrSlugAlreadyExists
	}

	passwordHash, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var tokenResponse auth.TokenResponse
	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		newUser := user.User{
			Email:        req.Email,
			PasswordHash: &passwordHash,
			Role:         user.RoleEmployer,
			FirstName:    &req.FirstName,
			IsActive:     true,
		}
		if req.LastName != "" {
			newUser.LastName = &req.LastName
		}

		createdUser, err := a.userRepo.Create(txCtx, newUser)
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		createdCompany, err := a.companyRepo.Create(txCtx, company.Company{
			Name:           req.CompanyName,
			Slug:           req.CompanySlug,
			ApprovalStatus: company.ApprovalPending,
		})
		if err != nil {
			return fmt.Errorf("failed to create company: %w", err)
		}

		newEmployer := employer.Employer{
			UserID:    createdUser.ID,
			CompanyID: createdCompany.ID,
		}
		if req.PositionTitle != "" {
			newEmployer.PositionTitle = &req.PositionTitle
		}
		if _, err := a.employerRepo.Create(txCtx, newEmployer); err != nil {
			return fmt.Errorf("failed to create employer profile: %w", err)
		}

		claims := jwt.Claims{
			UserID:    createdUser.ID,
			Email:     createdUser.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Role:      user.RoleEmployer,
		}
		tokenResponse, err = a.mintTokens(txCtx, claims, sessionReq)
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	return a.login(ctx, req, []user.Role{user.RoleCandidate, user.RoleEmployer}, sessionReq)
}

// LoginWithRole implements auth.AuthService.
func (a *AuthServiceImpl) LoginWithRole(ctx context.Context, req auth.LoginRequest, role user.Role, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	return a.login(ctx, req, []user.Role{role}, sessionReq)
}

func (a *AuthServiceImpl) login(ctx context.Context, req auth.LoginRequest, allowedRoles []user.Role, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	// OAuth-only accounts have no password hash
	if userData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if !userData.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}
	roleAllowed := false
	for _, role := range allowedRoles {
		if userData.Role == role {
			roleAllowed = true
			break
		}
	}
	if !roleAllowed {
		return auth.TokenResponse{}, auth.ErrWrongRoleForLogin
	}

	claims, err := a.claimsFor(ctx, userData)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	var tokenResponse auth.TokenResponse
	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		tokenResponse, err = a.mintTokens(txCtx, claims, sessionReq)
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// LoginWithGoogle implements auth.AuthService. An existing account is linked
// to the Google identity; an unknown email becomes a new candidate account
// with a verified email, the Google profile names and no password.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, profile auth.GoogleProfile, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	userData, err := a.userRepo.GetByEmail(ctx, profile.Email)
	if err != nil && err != pgx.ErrNoRows {
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	var tokenResponse auth.TokenResponse
	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		if userData.ID == "" {
			newUser := user.User{
				Email:           profile.Email,
				Role:            user.RoleCandidate,
				OAuthProvider:   strPtr("google"),
				OAuthProviderID: &profile.GoogleID,
				EmailVerified:   true,
				IsActive:        true,
			}
			if profile.GivenName != "" {
				newUser.FirstName = &profile.GivenName
			}
			if profile.FamilyName != "" {
				newUser.LastName = &profile.FamilyName
			}
			created, err := a.userRepo.Create(txCtx, newUser)
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}

			membershipNo, err := candidate.DeriveMembershipNo(created.ID)
			if err != nil {
				return fmt.Errorf("failed to derive membership number: %w", err)
			}
			if _, err := a.candidateRepo.Create(txCtx, candidate.Candidate{
				UserID:         created.ID,
				MembershipNo:   membershipNo,
				ApprovalStatus: candidate.ApprovalPending,
			}); err != nil {
				return fmt.Errorf("failed to create candidate profile: %w", err)
			}
			userData = created
		} else {
			if !userData.IsActive {
				return auth.ErrAccountInactive
			}
			if userData.OAuthProviderID == nil {
				linked, err := a.userRepo.LinkGoogleAccount(txCtx, profile.GoogleID, profile.Email)
				if err != nil {
					return fmt.Errorf("failed to link google account: %w", err)
				}
				userData = linked
			}
		}

		claims, err := a.claimsFor(txCtx, userData)
		if err != nil {
			return err
		}
		tokenResponse, err = a.mintTokens(txCtx, claims, sessionReq)
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return auth.ErrRefreshTokenCookieEmpty
	}
	if err := a.jwtRepo.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// RefreshToken implements auth.AuthService. The refresh token must pass
// signature verification, carry the refresh type, and still be live in the
// database.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	claims, err := a.jwtService.VerifyAccessToken(req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if claims.TokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userID, revoked, err := a.jwtRepo.IsRefreshTokenRevoked(ctx, req.RefreshToken)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if revoked {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.TokenResponse{}, auth.ErrUserNotFound
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	if !userData.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	accessClaims, err := a.claimsFor(ctx, userData)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	// Rotation: the presented refresh token is retired in the same
	// transaction that persists its replacement.
	var tokenResponse auth.TokenResponse
	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		if err := a.jwtRepo.RevokeRefreshToken(txCtx, req.RefreshToken); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}
		tokenResponse, err = a.mintTokens(txCtx, accessClaims, sessionReq)
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}
	return tokenResponse, nil
}

// VerifyEmail implements auth.AuthService.
func (a *AuthServiceImpl) VerifyEmail(ctx context.Context, req auth.VerifyEmailRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userData, err := a.userRepo.GetByVerificationToken(ctx, req.Token)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.ErrVerificationTokenNotFound
		}
		return fmt.Errorf("failed to get user by verification token: %w", err)
	}

	if userData.EmailVerified {
		return nil
	}
	if err := a.userRepo.MarkEmailVerified(ctx, userData.ID); err != nil {
		return fmt.Errorf("failed to mark email verified: %w", err)
	}
	return nil
}

func strPtr(s string) *string {
	return &s
}
