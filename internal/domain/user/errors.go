package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrCandidateAccessRequired = errors.New("candidate role required")
	ErrEmployerAccessRequired  = errors.New("employer role required")
	ErrMISAccessRequired       = errors.New("mis role required")
	ErrAccountInactive         = errors.New("account is inactive")
)
