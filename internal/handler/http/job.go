package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/job"
	"github.com/kerjalink/jobboard-backend-go/internal/handler/http/middleware"
	"github.com/kerjalink/jobboard-backend-go/internal/handler/http/response"
)

type JobHandler interface {
	CreateJobPost(w http.ResponseWriter, r *http.Request)
	Apply(w http.ResponseWriter, r *http.Request)
	ListMyApplications(w http.ResponseWriter, r *http.Request)
}

type JobHandlerImpl struct {
	jobService job.JobService
}

func NewJobHandler(jobService job.JobService) JobHandler {
	return &JobHandlerImpl{jobService: jobService}
}

// CreateJobPost implements JobHandler.
func (h *JobHandlerImpl) CreateJobPost(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing authentication token")
		return
	}

	var createReq job.CreateJobPostRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateJobPost decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	post, err := h.jobService.CreateJobPost(r.Context(), identity.UserID, createReq)
	if err != nil {
		slog.Error("CreateJobPost service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Job post created", "job_post_id", post.ID)
	response.Created(w, "Job post created", post)
}

// Apply implements JobHandler.
func (h *JobHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing authentication token")
		return
	}
	jobPostID := chi.URLParam(r, "jobPostID")

	application, err := h.jobService.Apply(r.Context(), identity.UserID, jobPostID)
	if err != nil {
		slog.Error("Apply service error", "job_post_id", jobPostID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Job application submitted", "application_id", application.ID, "job_post_id", jobPostID)
	response.Created(w, "Application submitted", application)
}

// ListMyApplications implements JobHandler.
func (h *JobHandlerImpl) ListMyApplications(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing authentication token")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	applications, total, err := h.jobService.ListMyApplications(r.Context(), identity.UserID, page, limit)
	if err != nil {
		slog.Error("ListMyApplications service error", "error", err)
		response.HandleError(w, err)
		return
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	response.SuccessWithMeta(w, applications, response.NewMeta(page, limit, total))
}
