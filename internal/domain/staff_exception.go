package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// StaffExceptionStatus represents the review state of a staff exception
type StaffExceptionStatus string

const (
	StaffExceptionPending  StaffExceptionStatus = "pending"
	StaffExceptionApproved StaffExceptionStatus = "approved"
	StaffExceptionDenied   StaffExceptionStatus = "denied"
)

// StaffExceptionType categorizes why the staff member is unavailable
type StaffExceptionType string

const (
	ExceptionTypeUnavailable StaffExceptionType = "unavailable"
	ExceptionTypeVacation    StaffExceptionType = "vacation"
	ExceptionTypeSick        StaffExceptionType = "sick"
	ExceptionTypeTraining    StaffExceptionType = "training"
	ExceptionTypePersonal    StaffExceptionType = "personal"
)

// StaffException is a staff-submitted unavailability request for a single
// date, owned by the staff service. This service only reads the collection
// and triggers approve/deny transitions.
//
// Lifecycle: created externally in pending; transitions to approved or
// denied exactly once via admin action, which stamps ReviewedAt and
// ReviewedByName; terminal thereafter.
type StaffException struct {
	ID             int64                `json:"id"`
	StaffName      string               `json:"staff_name"`
	Date           string               `json:"date"` // YYYY-MM-DD
	ExceptionType  StaffExceptionType   `json:"exception_type"`
	IsAllDay       bool                 `json:"is_all_day"`
	StartTime      *types.TimeString    `json:"start_time,omitempty"`
	EndTime        *types.TimeString    `json:"end_time,omitempty"`
	Reason         string               `json:"reason,omitempty"`
	Status         StaffExceptionStatus `json:"status"`
	CreatedAt      time.Time            `json:"created_at"`
	ReviewedAt     *time.Time           `json:"reviewed_at,omitempty"`
	ReviewedByName *string              `json:"reviewed_by_name,omitempty"`
	AdminNotes     *string              `json:"admin_notes,omitempty"`
}

// IsPending returns true while the exception still awaits review
func (e *StaffException) IsPending() bool {
	return e.Status == StaffExceptionPending
}

// IsReviewed returns true once the exception reached a terminal status
func (e *StaffException) IsReviewed() bool {
	return e.Status == StaffExceptionApproved || e.Status == StaffExceptionDenied
}

// StaffExceptionsForDate filters the collection down to a single date,
// preserving input order
func StaffExceptionsForDate(exceptions []StaffException, date string) []StaffException {
	matched := make([]StaffException, 0)
	for _, e := range exceptions {
		if e.Date == date {
			matched = append(matched, e)
		}
	}
	return matched
}
