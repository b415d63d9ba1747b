package mis

import (
	"context"
	"time"

	"github.com/kerjalink/jobboard-backend-go/internal/domain/candidate"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/company"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/mis"
)

type ServiceImpl struct {
	candidateRepo candidate.CandidateRepository
	companyRepo   company.CompanyRepository
}

func NewService(candidateRepo candidate.CandidateRepository, companyRepo company.CompanyRepository) mis.Service {
	return &ServiceImpl{
		candidateRepo: candidateRepo,
		companyRepo:   companyRepo,
	}
}

// ListCandidates implements mis.Service.
func (s *ServiceImpl) ListCandidates(ctx context.Context, q mis.ListQuery) ([]mis.CandidateSummary, int64, error) {
	if err := q.Validate(); err != nil {
		return nil, 0, err
	}
	q.Normalize()

	var status *candidate.ApprovalStatus
	if q.Status != "" {
		st := candidate.ApprovalStatus(q.Status)
		status = &st
	}

	candidates, total, err := s.candidateRepo.ListByApprovalStatus(ctx, status, q.Page, q.Limit)
	if err != nil {
		return nil, 0, err
	}

	summaries := make([]mis.CandidateSummary, 0, len(candidates))
	for _, c := range candidates {
		summaries = append(summaries, mis.CandidateSummary{
			ID:                c.ID,
			MembershipNo:      c.MembershipNo,
			Email:             c.Email,
			FirstName:         c.FirstName,
			LastName:          c.LastName,
			ApprovalStatus:    string(c.ApprovalStatus),
			ProfileCompletion: c.ProfileCompletionPercentage(),
			CreatedAt:         c.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return summaries, total, nil
}

// ReviewCandidate implements mis.Service.
func (s *ServiceImpl) ReviewCandidate(ctx context.Context, candidateID string, req mis.ApprovalDecisionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.candidateRepo.UpdateApprovalStatus(ctx, candidateID, candidate.ApprovalStatus(req.Status))
}

// ListCompanies implements mis.Service.
func (s *ServiceImpl) ListCompanies(ctx context.Context, q mis.ListQuery) ([]mis.CompanySummary, int64, error) {
	if err := q.Validate(); err != nil {
		return nil, 0, err
	}
	q.Normalize()

	var status *company.ApprovalStatus
	if q.Status != "" {
		st := company.ApprovalStatus(q.Status)
		status = &st
	}

	companies, total, err := s.companyRepo.ListByApprovalStatus(ctx, status, q.Page, q.Limit)
	if err != nil {
		return nil, 0, err
	}

	summaries := make([]mis.CompanySummary, 0, len(companies))
	for _, c := range companies {
		summaries = append(summaries, mis.CompanySummary{
			ID:             c.ID,
			Name:           c.Name,
			Slug:           c.Slug,
			Website:        c.Website,
			ApprovalStatus: string(c.ApprovalStatus),
			CreatedAt:      c.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return summaries, total, nil
}

// ReviewCompany implements mis.Service.
func (s *ServiceImpl) ReviewCompany(ctx context.Context, companyID string, req mis.ApprovalDecisionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.companyRepo.UpdateApprovalStatus(ctx, companyID, company.ApprovalStatus(req.Status))
}
