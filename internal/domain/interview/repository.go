package interview

import "context"

// NotificationRepository defines the interface for interview notification
// data access
type NotificationRepository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	GetByID(ctx context.Context, id string) (Notification, error)
	// Listings carry the joined candidate and company display names.
	ListByCandidateID(ctx context.Context, candidateID string, q ListQuery) ([]NotificationWithNames, int64, error)
	ListByEmployerID(ctx context.Context, employerID string, q ListQuery) ([]NotificationWithNames, int64, error)

	// ConfirmSlot transitions pending -> accepted and records the selected
	// slot as a single conditional update. It returns ErrAlreadyProcessed
	// when the row exists but is no longer pending, so two concurrent
	// confirmations cannot both win.
	ConfirmSlot(ctx context.Context, id string, slot TimeSlot) (Notification, error)

	// ExpirePending marks pending notifications whose latest offered slot
	// date is before the cutoff as expired; returns the number of rows
	// transitioned.
	ExpirePending(ctx context.Context, cutoffDate string) (int64, error)
}
