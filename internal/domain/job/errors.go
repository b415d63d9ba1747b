package job

import "errors"

var (
	ErrJobPostNotFound   = errors.New("job post not found")
	ErrJobPostClosed     = errors.New("job post is closed")
	ErrAlreadyApplied    = errors.New("already applied to this job post")
	ErrCandidateNotReady = errors.New("candidate profile must be approved before applying")
)
