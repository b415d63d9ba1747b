package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/employer"
	"github.com/kerjalink/jobboard-backend-go/internal/pkg/database"
)

type employerRepositoryImpl struct {
	db *database.DB
}

// NewEmployerRepository creates a new employer repository instance
func NewEmployerRepository(db *database.DB) employer.EmployerRepository {
	return &employerRepositoryImpl{db: db}
}

// Create implements employer.EmployerRepository.
func (r *employerRepositoryImpl) Create(ctx context.Context, e employer.Employer) (employer.Employer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employers (user_id, company_id, position_title)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, company_id, position_title, created_at, updated_at
	`

	var created employer.Employer
	err := q.QueryRow(ctx, query, e.UserID, e.CompanyID, e.PositionTitle).Scan(
		&created.ID, &created.UserID, &created.CompanyID, &created.PositionTitle,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return employer.Employer{}, fmt.Errorf("failed to create employer: %w", err)
	}
	return created, nil
}

// GetByUserID implements employer.EmployerRepository.
func (r *employerRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employer.Employer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, company_id, position_title, created_at, updated_at
		FROM employers
		WHERE user_id = $1
	`

	var e employer.Employer
	err := q.QueryRow(ctx, query, userID).Scan(
		&e.ID, &e.UserID, &e.CompanyID, &e.PositionTitle, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employer.Employer{}, employer.ErrEmployerNotFound
		}
		return employer.Employer{}, fmt.Errorf("failed to get employer by user id: %w", err)
	}
	return e, nil
}

// GetWithCompanyByUserID implements employer.EmployerRepository.
func (r *employerRepositoryImpl) GetWithCompanyByUserID(ctx context.Context, userID string) (employer.EmployerWithCompany, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.user_id, e.company_id, e.position_title, e.created_at, e.updated_at,
			   c.name, c.approval_status
		FROM employers e
		JOIN companies c ON c.id = e.company_id
		WHERE e.user_id = $1
	`

	var ec employer.EmployerWithCompany
	err := q.QueryRow(ctx, query, userID).Scan(
		&ec.ID, &ec.UserID, &ec.CompanyID, &ec.PositionTitle, &ec.CreatedAt, &ec.UpdatedAt,
		&ec.CompanyName, &ec.CompanyApprovalStatus,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employer.EmployerWithCompany{}, employer.ErrEmployerNotFound
		}
		return employer.EmployerWithCompany{}, fmt.Errorf("failed to get employer with company: %w", err)
	}
	return ec, nil
}
