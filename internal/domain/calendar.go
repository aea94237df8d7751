package domain

// DayClassification is the merged category assigned to a calendar date by
// combining business and staff exception data. It drives both styling and
// click routing in the admin console, so the precedence order is part of
// the contract.
type DayClassification string

const (
	// ClassificationBoth business exception combined with a pending or
	// approved staff exception
	ClassificationBoth          DayClassification = "both"
	ClassificationBusiness      DayClassification = "business"
	ClassificationStaffPending  DayClassification = "staff_pending"
	ClassificationStaffApproved DayClassification = "staff_approved"
	// ClassificationStaffDenied lowest non-default precedence, rendered muted
	ClassificationStaffDenied DayClassification = "staff_denied"
	ClassificationNone        DayClassification = "none"
)

// ClassifyDate computes the classification for one date. Precedence,
// highest first: both, business, staff-pending, staff-approved,
// staff-denied, none. Pure and deterministic: the same inputs always yield
// the same result.
func ClassifyDate(date string, exceptions []Exception, staffExceptions []StaffException) DayClassification {
	hasBusiness := HasExceptionOnDate(exceptions, date)

	staffForDate := StaffExceptionsForDate(staffExceptions, date)
	hasPending := false
	hasApproved := false
	hasDenied := false
	for _, e := range staffForDate {
		switch e.Status {
		case StaffExceptionPending:
			hasPending = true
		case StaffExceptionApproved:
			hasApproved = true
		case StaffExceptionDenied:
			hasDenied = true
		}
	}

	switch {
	case hasBusiness && (hasPending || hasApproved):
		return ClassificationBoth
	case hasBusiness:
		return ClassificationBusiness
	case hasPending:
		return ClassificationStaffPending
	case hasApproved:
		return ClassificationStaffApproved
	case hasDenied:
		return ClassificationStaffDenied
	default:
		return ClassificationNone
	}
}

// DayActionType tells the console which flow a click on the date opens
type DayActionType string

const (
	// ActionReviewStaffException open the staff exception review flow
	ActionReviewStaffException DayActionType = "review_staff_exception"
	// ActionAddBusinessException open the add business exception flow
	ActionAddBusinessException DayActionType = "add_business_exception"
)

// DayAction is the click route resolved for a calendar date
type DayAction struct {
	Type DayActionType `json:"type"`
	// StaffExceptionID set only for review actions
	StaffExceptionID *int64 `json:"staff_exception_id,omitempty"`
}

// ResolveDayAction picks the flow a click on the date opens. When staff
// exceptions exist for the date, review wins over adding a business
// exception, and the reviewed exception is chosen by a deterministic
// tie-break: newest CreatedAt first, then highest ID. Fetch order never
// affects the result.
func ResolveDayAction(date string, staffExceptions []StaffException) DayAction {
	staffForDate := StaffExceptionsForDate(staffExceptions, date)
	if len(staffForDate) == 0 {
		return DayAction{Type: ActionAddBusinessException}
	}

	chosen := staffForDate[0]
	for _, e := range staffForDate[1:] {
		if e.CreatedAt.After(chosen.CreatedAt) ||
			(e.CreatedAt.Equal(chosen.CreatedAt) && e.ID > chosen.ID) {
			chosen = e
		}
	}

	id := chosen.ID
	return DayAction{Type: ActionReviewStaffException, StaffExceptionID: &id}
}
