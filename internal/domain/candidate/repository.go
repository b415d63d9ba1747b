package candidate

import "context"

// CandidateRepository defines the interface for candidate data access
type CandidateRepository interface {
	Create(ctx context.Context, c Candidate) (Candidate, error)
	GetByID(ctx context.Context, id string) (Candidate, error)
	GetByUserID(ctx context.Context, userID string) (Candidate, error)
	GetWithUserByID(ctx context.Context, id string) (CandidateWithUser, error)
	ListByApprovalStatus(ctx context.Context, status *ApprovalStatus, page, limit int) ([]CandidateWithUser, int64, error)

	// UpdateApprovalStatus transitions a pending candidate to approved or
	// rejected. The update is conditional on the current status being
	// pending; it returns ErrApprovalAlreadyProcessed otherwise.
	UpdateApprovalStatus(ctx context.Context, id string, status ApprovalStatus) error
}
