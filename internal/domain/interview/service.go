package interview

import "context"

// NotificationService defines the interface for interview notification
// business logic
type NotificationService interface {
	// Send creates a pending notification from an employer to a candidate.
	// The employer's company must be approved and the candidate must exist.
	// A notification email to the candidate is sent best-effort: a send
	// failure is logged and does not fail the operation.
	Send(ctx context.Context, employerUserID string, req CreateNotificationRequest) (NotificationResponse, error)

	// Confirm records the candidate's chosen slot. Only the targeted
	// candidate may confirm, only while pending, and only a slot that
	// exactly matches one of the offers.
	Confirm(ctx context.Context, candidateUserID string, notificationID string, req ConfirmRequest) (NotificationResponse, error)

	ListForCandidate(ctx context.Context, candidateUserID string, q ListQuery) ([]NotificationResponse, int64, error)
	ListForEmployer(ctx context.Context, employerUserID string, q ListQuery) ([]NotificationResponse, int64, error)
}
