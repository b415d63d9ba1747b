package employer

import "context"

// EmployerRepository defines the interface for employer data access
type EmployerRepository interface {
	Create(ctx context.Context, e Employer) (Employer, error)
	GetByUserID(ctx context.Context, userID string) (Employer, error)
	GetWithCompanyByUserID(ctx context.Context, userID string) (EmployerWithCompany, error)
}
