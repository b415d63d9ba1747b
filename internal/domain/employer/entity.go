package employer

import "time"

type Employer struct {
	ID            string
	UserID        string
	CompanyID     string
	PositionTitle *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EmployerWithCompany contains employer data with the joined company
// approval status, used when gating employer-side operations.
type EmployerWithCompany struct {
	Employer
	CompanyName           string
	CompanyApprovalStatus string
}
