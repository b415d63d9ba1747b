package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kerjalink/jobboard-backend-go/internal/domain/interview"
)

type InterviewJobs struct {
	notificationRepo interview.NotificationRepository
}

func NewInterviewJobs(notificationRepo interview.NotificationRepository) *InterviewJobs {
	return &InterviewJobs{notificationRepo: notificationRepo}
}

func (j *InterviewJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("expire_pending_interviews", 1*time.Hour, j.ExpirePendingInterviews)
}

// ExpirePendingInterviews moves pending notifications whose last proposed
// slot date has passed to the expired status. A notification is still
// confirmable on its last slot date, so the cutoff is today.
func (j *InterviewJobs) ExpirePendingInterviews(ctx context.Context) error {
	cutoff := time.Now().UTC().Format("2006-01-02")

	count, err := j.notificationRepo.ExpirePending(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to expire pending interviews: %w", err)
	}

	if count > 0 {
		slog.Info("Cron: Expired pending interview notifications", "count", count, "cutoff", cutoff)
	}
	return nil
}
