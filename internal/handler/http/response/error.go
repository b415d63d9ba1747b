package response

import (
	"errors"
	"net/http"

	"github.com/kerjalink/jobboard-backend-go/internal/domain/auth"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/candidate"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/company"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/employer"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/interview"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/job"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/user"
	"github.com/kerjalink/jobboard-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrWrongRoleForLogin):
		Forbidden(w, "Account role not allowed on this login endpoint")
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, auth.ErrAccountInactive), errors.Is(err, user.ErrAccountInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, auth.ErrEmailNotVerified):
		Forbidden(w, "Email not verified")
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenCookieNotFound), errors.Is(err, auth.ErrRefreshTokenCookieEmpty):
		Unauthorized(w, "Refresh token missing")
	case errors.Is(err, auth.ErrVerificationTokenNotFound):
		NotFound(w, "Verification token not found")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrGoogleAccessDeniedByUser),
		errors.Is(err, auth.ErrStateCookieEmpty),
		errors.Is(err, auth.ErrStateParamEmpty),
		errors.Is(err, auth.ErrStateMismatch),
		errors.Is(err, auth.ErrCodeValueEmpty):
		BadRequest(w, err.Error(), nil)

	// Role gate errors
	case errors.Is(err, user.ErrCandidateAccessRequired),
		errors.Is(err, user.ErrEmployerAccessRequired),
		errors.Is(err, user.ErrMISAccessRequired):
		Forbidden(w, err.Error())

	// Candidate domain errors
	case errors.Is(err, candidate.ErrCandidateNotFound):
		NotFound(w, "Candidate not found")
	case errors.Is(err, candidate.ErrCandidateNotApproved):
		Forbidden(w, "Candidate profile is not approved")
	case errors.Is(err, candidate.ErrApprovalAlreadyProcessed):
		Conflict(w, "Candidate approval already processed")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyNotApproved):
		Forbidden(w, "Company is not approved")
	case errors.Is(err, company.ErrSlugAlreadyExists):
		Conflict(w, "Company slug already taken")
	case errors.Is(err, company.ErrApprovalAlreadyProcessed):
		Conflict(w, "Company approval already processed")

	// Employer domain errors
	case errors.Is(err, employer.ErrEmployerNotFound):
		Forbidden(w, "Employer profile required")

	// Interview domain errors
	case errors.Is(err, interview.ErrNotificationNotFound):
		NotFound(w, "Interview notification not found")
	case errors.Is(err, interview.ErrNotOwnNotification):
		Forbidden(w, "Interview notification belongs to another candidate")
	case errors.Is(err, interview.ErrAlreadyProcessed):
		BadRequest(w, "Interview notification already processed", nil)
	case errors.Is(err, interview.ErrSlotNotAvailable):
		BadRequest(w, "Selected slot is not one of the offered slots", nil)

	// Job domain errors
	case errors.Is(err, job.ErrJobPostNotFound):
		NotFound(w, "Job post not found")
	case errors.Is(err, job.ErrJobPostClosed):
		BadRequest(w, "Job post is closed", nil)
	case errors.Is(err, job.ErrAlreadyApplied):
		Conflict(w, "Already applied to this job post")
	case errors.Is(err, job.ErrCandidateNotReady):
		Forbidden(w, "Candidate profile must be approved before applying")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
