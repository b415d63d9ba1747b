package interview

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Status represents the status of an interview notification
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
)

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusExpired:
		return true
	}
	return false
}

const (
	MinTimeSlots = 1
	MaxTimeSlots = 3
)

// TimeSlot is a candidate-facing interview offer: a date plus a time range
// like "09.00 - 09.30".
type TimeSlot struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// Equal reports whether two slots match exactly. Confirmation requires an
// exact match against one of the offered slots.
func (s TimeSlot) Equal(other TimeSlot) bool {
	return s.Date == other.Date && s.Time == other.Time
}

// TimeSlots is the ordered list of offered slots, stored as JSONB.
type TimeSlots []TimeSlot

// Value implements driver.Valuer for database storage
func (ts TimeSlots) Value() (driver.Value, error) {
	return json.Marshal(ts)
}

// Scan implements sql.Scanner for database retrieval
func (ts *TimeSlots) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan TimeSlots: invalid type")
	}

	return json.Unmarshal(bytes, ts)
}

// Contains reports whether slot exactly matches one of the offered slots.
func (ts TimeSlots) Contains(slot TimeSlot) bool {
	for _, s := range ts {
		if s.Equal(slot) {
			return true
		}
	}
	return false
}

// Notification represents an interview notification entity
type Notification struct {
	ID               string
	EmployerID       string
	CandidateID      string
	Designation      *string
	Message          *string
	TimeSlots        TimeSlots
	Status           Status
	SelectedSlotDate *string
	SelectedSlotTime *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NotificationWithNames is the listing row: a notification plus the joined
// candidate and company display names.
type NotificationWithNames struct {
	Notification
	CandidateName string
	CompanyName   string
}

// IsPending reports whether the notification is still awaiting the candidate.
func (n *Notification) IsPending() bool {
	return n.Status == StatusPending
}

// LatestSlotDate returns the latest offered slot date, used by the expiry
// job: a pending notification whose latest slot has passed is dead.
func (n *Notification) LatestSlotDate() (time.Time, bool) {
	var latest time.Time
	found := false
	for _, s := range n.TimeSlots {
		d, err := time.Parse("2006-01-02", s.Date)
		if err != nil {
			continue
		}
		if !found || d.After(latest) {
			latest = d
			found = true
		}
	}
	return latest, found
}
