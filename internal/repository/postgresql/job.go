package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/job"
	"github.com/kerjalink/jobboard-backend-go/internal/pkg/database"
)

type jobRepositoryImpl struct {
	db *database.DB
}

// NewJobRepository creates a new job repository instance
func NewJobRepository(db *database.DB) job.JobRepository {
	return &jobRepositoryImpl{db: db}
}

// CreateJobPost implements job.JobRepository.
func (r *jobRepositoryImpl) CreateJobPost(ctx context.Context, p job.JobPost) (job.JobPost, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO job_posts (company_id, title, description, is_open)
		VALUES ($1, $2, $3, $4)
		RETURNING id, company_id, title, description, is_open, created_at, updated_at
	`
	var created job.JobPost
	err := q.QueryRow(ctx, query, p.CompanyID, p.Title, p.Description, p.IsOpen).Scan(
		&created.ID, &created.CompanyID, &created.Title, &created.Description,
		&created.IsOpen, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return job.JobPost{}, fmt.Errorf("failed to create job post: %w", err)
	}
	return created, nil
}

// GetJobPostByID implements job.JobRepository.
func (r *jobRepositoryImpl) GetJobPostByID(ctx context.Context, id string) (job.JobPost, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, title, description, is_open, created_at, updated_at
		FROM job_posts
		WHERE id = $1
	`
	var p job.JobPost
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.CompanyID, &p.Title, &p.Description,
		&p.IsOpen, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return job.JobPost{}, job.ErrJobPostNotFound
		}
		return job.JobPost{}, fmt.Errorf("failed to get job post: %w", err)
	}
	return p, nil
}

// CreateApplication implements job.JobRepository. The unique constraint on
// (job_post_id, candidate_id) backs the duplicate check, so a racing second
// submission surfaces as ErrAlreadyApplied rather than a second row.
func (r *jobRepositoryImpl) CreateApplication(ctx context.Context, a job.Application) (job.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO job_applications (job_post_id, candidate_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, job_post_id, candidate_id, status, created_at
	`
	var created job.Application
	err := q.QueryRow(ctx, query, a.JobPostID, a.CandidateID, a.Status).Scan(
		&created.ID, &created.JobPostID, &created.CandidateID, &created.Status, &created.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return job.Application{}, job.ErrAlreadyApplied
		}
		return job.Application{}, fmt.Errorf("failed to create job application: %w", err)
	}
	return created, nil
}

// ExistsApplication implements job.JobRepository.
func (r *jobRepositoryImpl) ExistsApplication(ctx context.Context, jobPostID, candidateID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM job_applications WHERE job_post_id = $1 AND candidate_id = $2)`
	if err := q.QueryRow(ctx, query, jobPostID, candidateID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check job application existence: %w", err)
	}
	return exists, nil
}

// ListApplicationsByCandidateID implements job.JobRepository.
func (r *jobRepositoryImpl) ListApplicationsByCandidateID(ctx context.Context, candidateID string, page, limit int) ([]job.ApplicationWithJob, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	countQuery := `SELECT COUNT(*) FROM job_applications WHERE candidate_id = $1`
	if err := q.QueryRow(ctx, countQuery, candidateID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count job applications: %w", err)
	}

	query := `
		SELECT ja.id, ja.job_post_id, ja.candidate_id, ja.status, ja.created_at,
			jp.title, c.name
		FROM job_applications ja
		JOIN job_posts jp ON jp.id = ja.job_post_id
		JOIN companies c ON c.id = jp.company_id
		WHERE ja.candidate_id = $1
		ORDER BY ja.created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := q.Query(ctx, query, candidateID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list job applications: %w", err)
	}
	defer rows.Close()

	var applications []job.ApplicationWithJob
	for rows.Next() {
		var a job.ApplicationWithJob
		err := rows.Scan(
			&a.ID, &a.JobPostID, &a.CandidateID, &a.Status, &a.CreatedAt,
			&a.JobTitle, &a.CompanyName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan job application: %w", err)
		}
		applications = append(applications, a)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return applications, total, nil
}
