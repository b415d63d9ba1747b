package interview

import (
	"fmt"
	"time"

	"github.com/kerjalink/jobboard-backend-go/internal/pkg/validator"
)

type CreateNotificationRequest struct {
	CandidateID     string     `json:"candidate_id"`
	DesignationName string     `json:"designation_name"`
	Message         string     `json:"message"`
	TimeSlots       []TimeSlot `json:"time_slots"`
}

func (r *CreateNotificationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CandidateID) {
		errs = append(errs, validator.ValidationError{
			Field:   "candidate_id",
			Message: "candidate_id is required",
		})
	}
	if len(r.DesignationName) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "designation_name",
			Message: "designation_name must not exceed 255 characters",
		})
	}

	if len(r.TimeSlots) < MinTimeSlots || len(r.TimeSlots) > MaxTimeSlots {
		errs = append(errs, validator.ValidationError{
			Field:   "time_slots",
			Message: fmt.Sprintf("time_slots must contain between %d and %d entries", MinTimeSlots, MaxTimeSlots),
		})
	} else {
		// Every slot must land on tomorrow or later (calendar days, so
		// midnight boundaries, not a 24h offset)
		now := time.Now()
		tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
		for i, slot := range r.TimeSlots {
			field := fmt.Sprintf("time_slots[%d]", i)
			if validator.IsEmpty(slot.Date) {
				errs = append(errs, validator.ValidationError{
					Field:   field + ".date",
					Message: "date is required",
				})
				continue
			}
			if validator.IsEmpty(slot.Time) {
				errs = append(errs, validator.ValidationError{
					Field:   field + ".time",
					Message: "time is required",
				})
				continue
			}
			date, ok := validator.IsValidDate(slot.Date)
			if !ok {
				errs = append(errs, validator.ValidationError{
					Field:   field + ".date",
					Message: "date must be in YYYY-MM-DD format",
				})
				continue
			}
			if !validator.IsValidTimeSlotRange(slot.Time) {
				errs = append(errs, validator.ValidationError{
					Field:   field + ".time",
					Message: "time must be a range like 09.00 - 09.30",
				})
				continue
			}
			if date.Before(tomorrow) {
				errs = append(errs, validator.ValidationError{
					Field:   field + ".date",
					Message: "date must be tomorrow or later",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ConfirmRequest struct {
	SelectedSlot TimeSlot `json:"selected_slot"`
}

func (r *ConfirmRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SelectedSlot.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "selected_slot.date",
			Message: "date is required",
		})
	}
	if validator.IsEmpty(r.SelectedSlot.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "selected_slot.time",
			Message: "time is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListQuery carries pagination and the optional status filter for
// notification listings.
type ListQuery struct {
	Status *Status
	Page   int
	Limit  int
}

func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 20
	}
}

type NotificationResponse struct {
	ID            string     `json:"id"`
	EmployerID    string     `json:"employer_id"`
	CandidateID   string     `json:"candidate_id"`
	CandidateName string     `json:"candidate_name,omitempty"`
	CompanyName   string     `json:"company_name,omitempty"`
	Designation   *string    `json:"designation,omitempty"`
	Message       *string    `json:"message,omitempty"`
	TimeSlots     []TimeSlot `json:"time_slots"`
	Status        Status     `json:"status"`
	SelectedSlot  *TimeSlot  `json:"selected_slot,omitempty"`
	CreatedAt     string     `json:"created_at"`
	UpdatedAt     string     `json:"updated_at"`
}

// ToResponse converts an entity to its API shape.
func ToResponse(n Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:          n.ID,
		EmployerID:  n.EmployerID,
		CandidateID: n.CandidateID,
		Designation: n.Designation,
		Message:     n.Message,
		TimeSlots:   n.TimeSlots,
		Status:      n.Status,
		CreatedAt:   n.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   n.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if n.SelectedSlotDate != nil && n.SelectedSlotTime != nil {
		resp.SelectedSlot = &TimeSlot{Date: *n.SelectedSlotDate, Time: *n.SelectedSlotTime}
	}
	return resp
}

// ToListResponse converts a listing row, carrying the joined names.
func ToListResponse(n NotificationWithNames) NotificationResponse {
	resp := ToResponse(n.Notification)
	resp.CandidateName = n.CandidateName
	resp.CompanyName = n.CompanyName
	return resp
}
