package job

import "context"

// JobService defines the interface for job post and application business
// logic
type JobService interface {
	// CreateJobPost publishes a job on behalf of the employer's company,
	// which must be approved.
	CreateJobPost(ctx context.Context, employerUserID string, req CreateJobPostRequest) (JobPostResponse, error)

	// Apply submits an application. Only approved candidates may apply, the
	// job must be open, and re-applying to the same job is rejected.
	Apply(ctx context.Context, candidateUserID string, jobPostID string) (ApplicationResponse, error)

	ListMyApplications(ctx context.Context, candidateUserID string, page, limit int) ([]ApplicationResponse, int64, error)
}
