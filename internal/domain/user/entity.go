package user

import "time"

type Role string

const (
	RoleCandidate         Role = "candidate"          // Job seeker
	RoleEmployer          Role = "employer"           // Hiring company staff
	RoleMIS               Role = "mis"                // Internal back-office, approves candidates and companies
	RoleRecruitmentAgency Role = "recruitment_agency" // Agency recruiting on behalf of companies
)

// IsValidRole reports whether r is one of the known roles.
func IsValidRole(r Role) bool {
	switch r {
	case RoleCandidate, RoleEmployer, RoleMIS, RoleRecruitmentAgency:
		return true
	}
	return false
}

type User struct {
	ID                     string
	Email                  string
	PasswordHash           *string
	Role                   Role
	FirstName              *string
	LastName               *string
	OAuthProvider          *string
	OAuthProviderID        *string
	EmailVerified          bool
	EmailVerificationToken *string
	IsActive               bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// IsCandidate checks if user is a job seeker
func (u *User) IsCandidate() bool {
	return u.Role == RoleCandidate
}

// IsEmployer checks if user belongs to a hiring company
func (u *User) IsEmployer() bool {
	return u.Role == RoleEmployer
}

// IsMIS checks if user is internal back-office staff
func (u *User) IsMIS() bool {
	return u.Role == RoleMIS
}
