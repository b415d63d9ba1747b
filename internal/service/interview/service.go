package interview

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kerjalink/jobboard-backend-go/internal/domain/candidate"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/company"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/employer"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/interview"
	"github.com/kerjalink/jobboard-backend-go/internal/pkg/email"
)

type NotificationServiceImpl struct {
	notificationRepo interview.NotificationRepository
	employerRepo     employer.EmployerRepository
	candidateRepo    candidate.CandidateRepository
	emailService     email.EmailService
	frontendURL      string
}

func NewNotificationService(
	notificationRepo interview.NotificationRepository,
	employerRepo employer.EmployerRepository,
	candidateRepo candidate.CandidateRepository,
	emailService email.EmailService,
	frontendURL string,
) interview.NotificationService {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		employerRepo:     employerRepo,
		candidateRepo:    candidateRepo,
		emailService:     emailService,
		frontendURL:      frontendURL,
	}
}

// Send implements interview.NotificationService.
func (s *NotificationServiceImpl) Send(ctx context.Context, employerUserID string, req interview.CreateNotificationRequest) (interview.NotificationResponse, error) {
	if err := req.Validate(); err != nil {
		return interview.NotificationResponse{}, err
	}

	employerData, err := s.employerRepo.GetWithCompanyByUserID(ctx, employerUserID)
	if err != nil {
		return interview.NotificationResponse{}, err
	}
	if employerData.CompanyApprovalStatus != string(company.ApprovalApproved) {
		return interview.NotificationResponse{}, company.ErrCompanyNotApproved
	}

	candidateData, err := s.candidateRepo.GetWithUserByID(ctx, req.CandidateID)
	if err != nil {
		return interview.NotificationResponse{}, err
	}

	notification := interview.Notification{
		EmployerID:  employerData.ID,
		CandidateID: candidateData.ID,
		TimeSlots:   interview.TimeSlots(req.TimeSlots),
		Status:      interview.StatusPending,
	}
	if req.DesignationName != "" {
		notification.Designation = &req.DesignationName
	}
	if req.Message != "" {
		notification.Message = &req.Message
	}

	created, err := s.notificationRepo.Create(ctx, notification)
	if err != nil {
		return interview.NotificationResponse{}, err
	}

	// Email the candidate best-effort: the notification row is the source of
	// truth, a failed email only gets logged.
	if s.emailService != nil {
		candidateName := candidateData.Email
		if candidateData.FirstName != nil && *candidateData.FirstName != "" {
			candidateName = *candidateData.FirstName
		}

		slots := make([]email.TimeSlotView, 0, len(created.TimeSlots))
		for _, slot := range created.TimeSlots {
			slots = append(slots, email.TimeSlotView{Date: slot.Date, Time: slot.Time})
		}

		dashboardLink := fmt.Sprintf("%s/candidate/interviews/%s", s.frontendURL, created.ID)
		err := s.emailService.SendInterviewNotification(
			candidateData.Email,
			candidateName,
			employerData.CompanyName,
			req.DesignationName,
			created.Message,
			slots,
			dashboardLink,
		)
		if err != nil {
			slog.Error("Failed to send interview notification email",
				"notification_id", created.ID,
				"candidate_id", created.CandidateID,
				"error", err,
			)
		}
	}

	return interview.ToResponse(created), nil
}

// Confirm implements interview.NotificationService.
func (s *NotificationServiceImpl) Confirm(ctx context.Context, candidateUserID string, notificationID string, req interview.ConfirmRequest) (interview.NotificationResponse, error) {
	if err := req.Validate(); err != nil {
		return interview.NotificationResponse{}, err
	}

	candidateData, err := s.candidateRepo.GetByUserID(ctx, candidateUserID)
	if err != nil {
		return interview.NotificationResponse{}, err
	}

	notification, err := s.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return interview.NotificationResponse{}, err
	}
	if notification.CandidateID != candidateData.ID {
		return interview.NotificationResponse{}, interview.ErrNotOwnNotification
	}
	if !notification.IsPending() {
		return interview.NotificationResponse{}, interview.ErrAlreadyProcessed
	}
	if !notification.TimeSlots.Contains(req.SelectedSlot) {
		return interview.NotificationResponse{}, interview.ErrSlotNotAvailable
	}

	// The pending check above is advisory; ConfirmSlot re-checks it inside
	// the update so a concurrent winner makes this return ErrAlreadyProcessed.
	updated, err := s.notificationRepo.ConfirmSlot(ctx, notificationID, req.SelectedSlot)
	if err != nil {
		return interview.NotificationResponse{}, err
	}

	return interview.ToResponse(updated), nil
}

// ListForCandidate implements interview.NotificationService.
func (s *NotificationServiceImpl) ListForCandidate(ctx context.Context, candidateUserID string, q interview.ListQuery) ([]interview.NotificationResponse, int64, error) {
	candidateData, err := s.candidateRepo.GetByUserID(ctx, candidateUserID)
	if err != nil {
		return nil, 0, err
	}

	q.Normalize()
	notifications, total, err := s.notificationRepo.ListByCandidateID(ctx, candidateData.ID, q)
	if err != nil {
		return nil, 0, err
	}
	return toResponses(notifications), total, nil
}

// ListForEmployer implements interview.NotificationService.
func (s *NotificationServiceImpl) ListForEmployer(ctx context.Context, employerUserID string, q interview.ListQuery) ([]interview.NotificationResponse, int64, error) {
	employerData, err := s.employerRepo.GetByUserID(ctx, employerUserID)
	if err != nil {
		return nil, 0, err
	}

	q.Normalize()
	notifications, total, err := s.notificationRepo.ListByEmployerID(ctx, employerData.ID, q)
	if err != nil {
		return nil, 0, err
	}
	return toResponses(notifications), total, nil
}

func toResponses(notifications []interview.NotificationWithNames) []interview.NotificationResponse {
	responses := make([]interview.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, interview.ToListResponse(n))
	}
	return responses
}
