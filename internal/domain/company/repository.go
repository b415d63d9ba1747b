package company

import "context"

// CompanyRepository defines the interface for company data access
type CompanyRepository interface {
	Create(ctx context.Context, c Company) (Company, error)
	GetByID(ctx context.Context, id string) (Company, error)
	GetBySlug(ctx context.Context, slug string) (Company, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	ListByApprovalStatus(ctx context.Context, status *ApprovalStatus, page, limit int) ([]Company, int64, error)

	// UpdateApprovalStatus transitions a pending company to approved or
	// rejected; conditional on the current status being pending.
	UpdateApprovalStatus(ctx context.Context, id string, status ApprovalStatus) error
}
