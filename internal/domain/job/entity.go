package job

import "time"

type JobPost struct {
	ID          string
	CompanyID   string
	Title       string
	Description *string
	IsOpen      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ApplicationStatus string

const (
	ApplicationSubmitted ApplicationStatus = "submitted"
)

type Application struct {
	ID          string
	JobPostID   string
	CandidateID string
	Status      ApplicationStatus
	CreatedAt   time.Time
}

// ApplicationWithJob contains application data with joined job fields
type ApplicationWithJob struct {
	Application
	JobTitle    string
	CompanyName string
}
