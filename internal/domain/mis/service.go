package mis

import "context"

// Service defines the interface for back-office review business logic.
// Approval decisions are one-shot: once a candidate or company leaves the
// pending status the decision cannot be re-issued.
type Service interface {
	ListCandidates(ctx context.Context, q ListQuery) ([]CandidateSummary, int64, error)
	ReviewCandidate(ctx context.Context, candidateID string, req ApprovalDecisionRequest) error

	ListCompanies(ctx context.Context, q ListQuery) ([]CompanySummary, int64, error)
	ReviewCompany(ctx context.Context, companyID string, req ApprovalDecisionRequest) error
}
