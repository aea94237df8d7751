package domain

import "github.com/m04kA/SMC-AvailabilityService/pkg/types"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default shift applied to newly opened days and to the default schedule
const (
	DefaultShiftStart types.TimeString = "09:00"
	DefaultShiftEnd   types.TimeString = "17:00"
)

// Weekday identifies a day of the calendar week
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// WeekdaysInOrder fixed iteration order Monday..Sunday
var WeekdaysInOrder = []Weekday{
	Monday,
	Tuesday,
	Wednesday,
	Thursday,
	Friday,
	Saturday,
	Sunday,
}

// IsValid returns true if the value is one of the seven weekday identifiers
func (d Weekday) IsValid() bool {
	for _, day := range WeekdaysInOrder {
		if day == d {
			return true
		}
	}
	return false
}
