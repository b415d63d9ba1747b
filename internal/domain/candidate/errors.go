package candidate

import "errors"

var (
	ErrCandidateNotFound        = errors.New("candidate not found")
	ErrCandidateNotApproved     = errors.New("candidate profile is not approved")
	ErrApprovalAlreadyProcessed = errors.New("candidate approval already processed")
	ErrInvalidApprovalStatus    = errors.New("invalid approval status")
)
