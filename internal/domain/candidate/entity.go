package candidate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ApprovalStatus gates whether a candidate may apply to jobs.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

func IsValidApprovalStatus(s ApprovalStatus) bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

type Candidate struct {
	ID             string
	UserID         string
	MembershipNo   string
	ApprovalStatus ApprovalStatus
	Headline       *string
	Summary        *string
	Phone          *string
	City           *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CandidateWithUser contains candidate data with joined user fields
type CandidateWithUser struct {
	Candidate
	Email     string
	FirstName *string
	LastName  *string
}

// CanApply reports whether the candidate may submit job applications.
func (c *Candidate) CanApply() bool {
	return c.ApprovalStatus == ApprovalApproved
}

// DeriveMembershipNo derives the immutable membership number from the
// candidate's user ID: the first 8 hex characters of the UUID interpreted as
// a base-16 integer, plus 1000, stringified.
func DeriveMembershipNo(userID string) (string, error) {
	hexPart := strings.ReplaceAll(userID, "-", "")
	if len(hexPart) < 8 {
		return "", fmt.Errorf("user id %q too short to derive membership number", userID)
	}
	n, err := strconv.ParseUint(hexPart[:8], 16, 64)
	if err != nil {
		return "", fmt.Errorf("user id %q is not hex-prefixed: %w", userID, err)
	}
	return strconv.FormatUint(n+1000, 10), nil
}

// profileChecklist lists the fields counted toward profile completion.
// Completion is computed on read, never stored.
func (c *CandidateWithUser) ProfileCompletionPercentage() int {
	checks := []bool{
		c.FirstName != nil && *c.FirstName != "",
		c.LastName != nil && *c.LastName != "",
		c.Headline != nil && *c.Headline != "",
		c.Summary != nil && *c.Summary != "",
		c.Phone != nil && *c.Phone != "",
		c.City != nil && *c.City != "",
	}
	done := 0
	for _, ok := range checks {
		if ok {
			done++
		}
	}
	return done * 100 / len(checks)
}
