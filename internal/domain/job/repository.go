package job

import "context"

// JobRepository defines the interface for job post and application data
// access
type JobRepository interface {
	CreateJobPost(ctx context.Context, p JobPost) (JobPost, error)
	GetJobPostByID(ctx context.Context, id string) (JobPost, error)

	CreateApplication(ctx context.Context, a Application) (Application, error)
	ExistsApplication(ctx context.Context, jobPostID, candidateID string) (bool, error)
	ListApplicationsByCandidateID(ctx context.Context, candidateID string, page, limit int) ([]ApplicationWithJob, int64, error)
}
