package mis

import (
	"github.com/kerjalink/jobboard-backend-go/internal/pkg/validator"
)

// ApprovalDecisionRequest carries the reviewer's verdict on a pending
// candidate or company.
type ApprovalDecisionRequest struct {
	Status string `json:"status"`
}

func (r *ApprovalDecisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !validator.IsInSlice(r.Status, []string{"approved", "rejected"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be either approved or rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListQuery carries pagination and the optional approval-status filter for
// back-office listings.
type ListQuery struct {
	Status string
	Page   int
	Limit  int
}

func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 20
	}
}

func (q *ListQuery) Validate() error {
	var errs validator.ValidationErrors

	if q.Status != "" && !validator.IsInSlice(q.Status, []string{"pending", "approved", "rejected"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of pending, approved, rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CandidateSummary is the back-office view of a candidate under review.
type CandidateSummary struct {
	ID                string  `json:"id"`
	MembershipNo      string  `json:"membership_no"`
	Email             string  `json:"email"`
	FirstName         *string `json:"first_name,omitempty"`
	LastName          *string `json:"last_name,omitempty"`
	ApprovalStatus    string  `json:"approval_status"`
	ProfileCompletion int     `json:"profile_completion"`
	CreatedAt         string  `json:"created_at"`
}

// CompanySummary is the back-office view of a company under review.
type CompanySummary struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Slug           string  `json:"slug"`
	Website        *string `json:"website,omitempty"`
	ApprovalStatus string  `json:"approval_status"`
	CreatedAt      string  `json:"created_at"`
}
