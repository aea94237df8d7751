package domain

import "time"

// Exception represents a business-wide date override marking a local
// calendar date fully or partially unavailable, independent of the weekly
// schedule. It lives inside the persisted availability record.
type Exception struct {
	Date      string      `json:"date"` // YYYY-MM-DD, local calendar date
	Reason    string      `json:"reason,omitempty"`
	IsAllDay  bool        `json:"isAllDay"`
	TimeSlots []TimeShift `json:"timeSlots,omitempty"` // present only when not all-day
}

// FormatLocalDate converts a time.Time to the YYYY-MM-DD string for the
// local calendar date. Year/Month/Day are read in t's own location, so the
// result is never shifted by a UTC conversion.
func FormatLocalDate(t time.Time) string {
	return t.Format(DateFormat)
}

// ParseLocalDate parses a YYYY-MM-DD string as a local calendar date
func ParseLocalDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, time.Local)
}

// HasExceptionOnDate reports whether any exception exists for the given date
func HasExceptionOnDate(exceptions []Exception, date string) bool {
	for _, e := range exceptions {
		if e.Date == date {
			return true
		}
	}
	return false
}
