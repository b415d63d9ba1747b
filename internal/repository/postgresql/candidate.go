package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/candidate"
	"github.com/kerjalink/jobboard-backend-go/internal/pkg/database"
)

type candidateRepositoryImpl struct {
	db *database.DB
}

// NewCandidateRepository creates a new candidate repository instance
func NewCandidateRepository(db *database.DB) candidate.CandidateRepository {
	return &candidateRepositoryImpl{db: db}
}

const candidateColumns = `id, user_id, membership_no, approval_status,
		headline, summary, phone, city, created_at, updated_at`

func scanCandidate(row pgx.Row) (candidate.Candidate, error) {
	var c candidate.Candidate
	err := row.Scan(
		&c.ID, &c.UserID, &c.MembershipNo, &c.ApprovalStatus,
		&c.Headline, &c.Summary, &c.Phone, &c.City, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// Create implements candidate.CandidateRepository.
func (r *candidateRepositoryImpl) Create(ctx context.Context, c candidate.Candidate) (candidate.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO candidates (user_id, membership_no, approval_status, headline, summary, phone, city)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + candidateColumns

	created, err := scanCandidate(q.QueryRow(ctx, query,
		c.UserID, c.MembershipNo, c.ApprovalStatus, c.Headline, c.Summary, c.Phone, c.City,
	))
	if err != nil {
		return candidate.Candidate{}, fmt.Errorf("failed to create candidate: %w", err)
	}
	return created, nil
}

// GetByID implements candidate.CandidateRepository.
func (r *candidateRepositoryImpl) GetByID(ctx context.Context, id string) (candidate.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	c, err := scanCandidate(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return candidate.Candidate{}, candidate.ErrCandidateNotFound
		}
		return candidate.Candidate{}, fmt.Errorf("failed to get candidate by id: %w", err)
	}
	return c, nil
}

// GetByUserID implements candidate.CandidateRepository.
func (r *candidateRepositoryImpl) GetByUserID(ctx context.Context, userID string) (candidate.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE user_id = $1`
	c, err := scanCandidate(q.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return candidate.Candidate{}, candidate.ErrCandidateNotFound
		}
		return candidate.Candidate{}, fmt.Errorf("failed to get candidate by user id: %w", err)
	}
	return c, nil
}

// GetWithUserByID implements candidate.CandidateRepository.
func (r *candidateRepositoryImpl) GetWithUserByID(ctx context.Context, id string) (candidate.CandidateWithUser, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.user_id, c.membership_no, c.approval_status,
			   c.headline, c.summary, c.phone, c.city, c.created_at, c.updated_at,
			   u.email, u.first_name, u.last_name
		FROM candidates c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = $1
	`

	var cw candidate.CandidateWithUser
	err := q.QueryRow(ctx, query, id).Scan(
		&cw.ID, &cw.UserID, &cw.MembershipNo, &cw.ApprovalStatus,
		&cw.Headline, &cw.Summary, &cw.Phone, &cw.City, &cw.CreatedAt, &cw.UpdatedAt,
		&cw.Email, &cw.FirstName, &cw.LastName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return candidate.CandidateWithUser{}, candidate.ErrCandidateNotFound
		}
		return candidate.CandidateWithUser{}, fmt.Errorf("failed to get candidate with user: %w", err)
	}
	return cw, nil
}

// ListByApprovalStatus implements candidate.CandidateRepository.
func (r *candidateRepositoryImpl) ListByApprovalStatus(ctx context.Context, status *candidate.ApprovalStatus, page, limit int) ([]candidate.CandidateWithUser, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := ""
	args := []interface{}{}
	if status != nil {
		whereClause = "WHERE c.approval_status = $1"
		args = append(args, *status)
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM candidates c %s`, whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count candidates: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT c.id, c.user_id, c.membership_no, c.approval_status,
			   c.headline, c.summary, c.phone, c.city, c.created_at, c.updated_at,
			   u.email, u.first_name, u.last_name
		FROM candidates c
		JOIN users u ON u.id = c.user_id
		%s
		ORDER BY c.created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, len(args)+1, len(args)+2)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []candidate.CandidateWithUser
	for rows.Next() {
		var cw candidate.CandidateWithUser
		err := rows.Scan(
			&cw.ID, &cw.UserID, &cw.MembershipNo, &cw.ApprovalStatus,
			&cw.Headline, &cw.Summary, &cw.Phone, &cw.City, &cw.CreatedAt, &cw.UpdatedAt,
			&cw.Email, &cw.FirstName, &cw.LastName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, cw)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return candidates, total, nil
}

// UpdateApprovalStatus implements candidate.CandidateRepository.
func (r *candidateRepositoryImpl) UpdateApprovalStatus(ctx context.Context, id string, status candidate.ApprovalStatus) error {
	q := GetQuerier(ctx, r.db)

	// Conditional update: only pending rows may transition
	query := `
		UPDATE candidates
		SET approval_status = $1, updated_at = NOW()
		WHERE id = $2 AND approval_status = 'pending'
		RETURNING id
	`
	var updatedID string
	err := q.QueryRow(ctx, query, status, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Distinguish missing row from already-processed row
			var exists bool
			if checkErr := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM candidates WHERE id = $1)`, id).Scan(&exists); checkErr != nil {
				return fmt.Errorf("failed to check candidate existence: %w", checkErr)
			}
			if !exists {
				return candidate.ErrCandidateNotFound
			}
			return candidate.ErrApprovalAlreadyProcessed
		}
		return fmt.Errorf("failed to update candidate approval status: %w", err)
	}
	return nil
}
