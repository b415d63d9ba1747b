package company

import "time"

// ApprovalStatus gates whether a company's employers may post jobs and send
// interview notifications.
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

type Company struct {
	ID             string
	Name           string
	Slug           string
	ApprovalStatus ApprovalStatus
	Website        *string
	About          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsApproved reports whether the company passed MIS review.
func (c *Company) IsApproved() bool {
	return c.ApprovalStatus == ApprovalApproved
}
