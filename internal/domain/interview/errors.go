package interview

import "errors"

var (
	ErrNotificationNotFound = errors.New("interview notification not found")
	ErrNotOwnNotification   = errors.New("interview notification belongs to another candidate")
	ErrAlreadyProcessed     = errors.New("interview notification already processed")
	ErrSlotNotAvailable     = errors.New("selected slot is not one of the offered slots")
)
