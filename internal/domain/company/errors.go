package company

import "errors"

var (
	ErrCompanyNotFound          = errors.New("company not found")
	ErrCompanyNotApproved       = errors.New("company is not approved")
	ErrSlugAlreadyExists        = errors.New("company slug already exists")
	ErrApprovalAlreadyProcessed = errors.New("company approval already processed")
	ErrInvalidApprovalStatus    = errors.New("invalid approval status")
)
