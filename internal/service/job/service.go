package job

import (
	"context"

	"github.com/kerjalink/jobboard-backend-go/internal/domain/candidate"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/company"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/employer"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/job"
)

type JobServiceImpl struct {
	jobRepo       job.JobRepository
	employerRepo  employer.EmployerRepository
	candidateRepo candidate.CandidateRepository
}

func NewJobService(jobRepo job.JobRepository, employerRepo employer.EmployerRepository, candidateRepo candidate.CandidateRepository) job.JobService {
	return &JobServiceImpl{
		jobRepo:       jobRepo,
		employerRepo:  employerRepo,
		candidateRepo: candidateRepo,
	}
}

// CreateJobPost implements job.JobService.
func (s *JobServiceImpl) CreateJobPost(ctx context.Context, employerUserID string, req job.CreateJobPostRequest) (job.JobPostResponse, error) {
	if err := req.Validate(); err != nil {
		return job.JobPostResponse{}, err
	}

	employerData, err := s.employerRepo.GetWithCompanyByUserID(ctx, employerUserID)
	if err != nil {
		return job.JobPostResponse{}, err
	}
	if employerData.CompanyApprovalStatus != string(company.ApprovalApproved) {
		return job.JobPostResponse{}, company.ErrCompanyNotApproved
	}

	post := job.JobPost{
		CompanyID: employerData.CompanyID,
		Title:     req.Title,
		IsOpen:    true,
	}
	if req.Description != "" {
		post.Description = &req.Description
	}

	created, err := s.jobRepo.CreateJobPost(ctx, post)
	if err != nil {
		return job.JobPostResponse{}, err
	}
	return job.ToJobPostResponse(created), nil
}

// Apply implements job.JobService.
func (s *JobServiceImpl) Apply(ctx context.Context, candidateUserID string, jobPostID string) (job.ApplicationResponse, error) {
	candidateData, err := s.candidateRepo.GetByUserID(ctx, candidateUserID)
	if err != nil {
		return job.ApplicationResponse{}, err
	}
	if !candidateData.CanApply() {
		return job.ApplicationResponse{}, job.ErrCandidateNotReady
	}

	post, err := s.jobRepo.GetJobPostByID(ctx, jobPostID)
	if err != nil {
		return job.ApplicationResponse{}, err
	}
	if !post.IsOpen {
		return job.ApplicationResponse{}, job.ErrJobPostClosed
	}

	// The insert relies on the unique constraint for the race-free duplicate
	// check; this early lookup just gives a cleaner error on the common path.
	exists, err := s.jobRepo.ExistsApplication(ctx, post.ID, candidateData.ID)
	if err != nil {
		return job.ApplicationResponse{}, err
	}
	if exists {
		return job.ApplicationResponse{}, job.ErrAlreadyApplied
	}

	created, err := s.jobRepo.CreateApplication(ctx, job.Application{
		JobPostID:   post.ID,
		CandidateID: candidateData.ID,
		Status:      job.ApplicationSubmitted,
	})
	if err != nil {
		return job.ApplicationResponse{}, err
	}
	return job.ToApplicationResponse(created), nil
}

// ListMyApplications implements job.JobService.
func (s *JobServiceImpl) ListMyApplications(ctx context.Context, candidateUserID string, page, limit int) ([]job.ApplicationResponse, int64, error) {
	candidateData, err := s.candidateRepo.GetByUserID(ctx, candidateUserID)
	if err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	applications, total, err := s.jobRepo.ListApplicationsByCandidateID(ctx, candidateData.ID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]job.ApplicationResponse, 0, len(applications))
	for _, a := range applications {
		responses = append(responses, job.ToApplicationWithJobResponse(a))
	}
	return responses, total, nil
}
