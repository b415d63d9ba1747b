package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/company"
	"github.com/kerjalink/jobboard-backend-go/internal/pkg/database"
)

type companyRepositoryImpl struct {
	db *database.DB
}

// NewCompanyRepository creates a new company repository instance
func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

const companyColumns = `id, name, slug, approval_status, website, about, created_at, updated_at`

func scanCompany(row pgx.Row) (company.Company, error) {
	var c company.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Slug, &c.ApprovalStatus, &c.Website, &c.About,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// Create implements company.CompanyRepository.
func (r *companyRepositoryImpl) Create(ctx context.Context, c company.Company) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO companies (name, slug, approval_status, website, about)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + companyColumns

	created, err := scanCompany(q.QueryRow(ctx, query, c.Name, c.Slug, c.ApprovalStatus, c.Website, c.About))
	if err != nil {
		return company.Company{}, fmt.Errorf("failed to create company: %w", err)
	}
	return created, nil
}

// GetByID implements company.CompanyRepository.
func (r *companyRepositoryImpl) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	c, err := scanCompany(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company by id: %w", err)
	}
	return c, nil
}

// GetBySlug implements company.CompanyRepository.
func (r *companyRepositoryImpl) GetBySlug(ctx context.Context, slug string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + companyColumns + ` FROM companies WHERE slug = $1`
	c, err := scanCompany(q.QueryRow(ctx, query, slug))
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company by slug: %w", err)
	}
	return c, nil
}

// ExistsBySlug implements company.CompanyRepository.
func (r *companyRepositoryImpl) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM companies WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check company slug: %w", err)
	}
	return exists, nil
}

// ListByApprovalStatus implements company.CompanyRepository.
func (r *companyRepositoryImpl) ListByApprovalStatus(ctx context.Context, status *company.ApprovalStatus, page, limit int) ([]company.Company, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := ""
	args := []interface{}{}
	if status != nil {
		whereClause = "WHERE approval_status = $1"
		args = append(args, *status)
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM companies %s`, whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count companies: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM companies
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, companyColumns, whereClause, len(args)+1, len(args)+2)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []company.Company
	for rows.Next() {
		var c company.Company
		err := rows.Scan(
			&c.ID, &c.Name, &c.Slug, &c.ApprovalStatus, &c.Website, &c.About,
			&c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return companies, total, nil
}

// UpdateApprovalStatus implements company.CompanyRepository.
func (r *companyRepositoryImpl) UpdateApprovalStatus(ctx context.Context, id string, status company.ApprovalStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE companies
		SET approval_status = $1, updated_at = NOW()
		WHERE id = $2 AND approval_status = 'pending'
		RETURNING id
	`
	var updatedID string
	err := q.QueryRow(ctx, query, status, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			var exists bool
			if checkErr := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM companies WHERE id = $1)`, id).Scan(&exists); checkErr != nil {
				return fmt.Errorf("failed to check company existence: %w", checkErr)
			}
			if !exists {
				return company.ErrCompanyNotFound
			}
			return company.ErrApprovalAlreadyProcessed
		}
		return fmt.Errorf("failed to update company approval status: %w", err)
	}
	return nil
}
