package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/interview"
	"github.com/kerjalink/jobboard-backend-go/internal/handler/http/middleware"
	"github.com/kerjalink/jobboard-backend-go/internal/handler/http/response"
)

var errInvalidStatusFilter = errors.New("status must be one of pending, accepted, rejected, expired")

type InterviewHandler interface {
	Send(w http.ResponseWriter, r *http.Request)
	Confirm(w http.ResponseWriter, r *http.Request)
	ListForCandidate(w http.ResponseWriter, r *http.Request)
	ListForEmployer(w http.ResponseWriter, r *http.Request)
}

type InterviewHandlerImpl struct {
	notificationService interview.NotificationService
}

func NewInterviewHandler(notificationService interview.NotificationService) InterviewHandler {
	return &InterviewHandlerImpl{notificationService: notificationService}
}

// Send implements InterviewHandler.
func (h *InterviewHandlerImpl) Send(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing authentication token")
		return
	}

	var createReq interview.CreateNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Send interview decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	notification, err := h.notificationService.Send(r.Context(), identity.UserID, createReq)
	if err != nil {
		slog.Error("Send interview service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Interview notification sent",
		"notification_id", notification.ID,
		"candidate_id", notification.CandidateID,
	)
	response.Created(w, "Interview notification sent", notification)
}

// Confirm implements InterviewHandler.
func (h *InterviewHandlerImpl) Confirm(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing authentication token")
		return
	}
	notificationID := chi.URLParam(r, "notificationID")

	var confirmReq interview.ConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&confirmReq); err != nil {
		slog.Error("Confirm interview decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	notification, err := h.notificationService.Confirm(r.Context(), identity.UserID, notificationID, confirmReq)
	if err != nil {
		slog.Error("Confirm interview service error", "notification_id", notificationID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Interview slot confirmed", "notification_id", notification.ID)
	response.SuccessWithMessage(w, "Interview slot confirmed", notification)
}

// ListForCandidate implements InterviewHandler.
func (h *InterviewHandlerImpl) ListForCandidate(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing authentication token")
		return
	}

	q, err := listQueryFromRequest(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	notifications, total, err := h.notificationService.ListForCandidate(r.Context(), identity.UserID, q)
	if err != nil {
		slog.Error("List candidate interviews service error", "error", err)
		response.HandleError(w, err)
		return
	}

	q.Normalize()
	response.SuccessWithMeta(w, notifications, response.NewMeta(q.Page, q.Limit, total))
}

// ListForEmployer implements InterviewHandler.
func (h *InterviewHandlerImpl) ListForEmployer(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing authentication token")
		return
	}

	q, err := listQueryFromRequest(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	notifications, total, err := h.notificationService.ListForEmployer(r.Context(), identity.UserID, q)
	if err != nil {
		slog.Error("List employer interviews service error", "error", err)
		response.HandleError(w, err)
		return
	}

	q.Normalize()
	response.SuccessWithMeta(w, notifications, response.NewMeta(q.Page, q.Limit, total))
}

func listQueryFromRequest(r *http.Request) (interview.ListQuery, error) {
	var q interview.ListQuery

	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status := interview.Status(statusStr)
		if !interview.IsValidStatus(status) {
			return q, errInvalidStatusFilter
		}
		q.Status = &status
	}
	q.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	q.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	return q, nil
}
