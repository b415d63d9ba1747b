package job

import (
	"time"

	"github.com/kerjalink/jobboard-backend-go/internal/pkg/validator"
)

type CreateJobPostRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r *CreateJobPostRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if len(r.Title) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 255 characters",
		})
	}
	if len(r.Description) > 10000 {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description must not exceed 10000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type JobPostResponse struct {
	ID          string  `json:"id"`
	CompanyID   string  `json:"company_id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	IsOpen      bool    `json:"is_open"`
	CreatedAt   string  `json:"created_at"`
}

func ToJobPostResponse(p JobPost) JobPostResponse {
	return JobPostResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		Title:       p.Title,
		Description: p.Description,
		IsOpen:      p.IsOpen,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type ApplicationResponse struct {
	ID          string `json:"id"`
	JobPostID   string `json:"job_post_id"`
	JobTitle    string `json:"job_title,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

func ToApplicationResponse(a Application) ApplicationResponse {
	return ApplicationResponse{
		ID:        a.ID,
		JobPostID: a.JobPostID,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToApplicationWithJobResponse(a ApplicationWithJob) ApplicationResponse {
	resp := ToApplicationResponse(a.Application)
	resp.JobTitle = a.JobTitle
	resp.CompanyName = a.CompanyName
	return resp
}
