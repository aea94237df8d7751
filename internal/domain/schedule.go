package domain

import "github.com/m04kA/SMC-AvailabilityService/pkg/types"

// TimeShift represents a contiguous open interval within one day.
// Start must be strictly before End; overnight wraparound is not supported.
type TimeShift struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// IsComplete returns true if both boundaries are present
func (s TimeShift) IsComplete() bool {
	return !s.Start.IsZero() && !s.End.IsZero()
}

// IsChronological returns true if the shift starts strictly before it ends
func (s TimeShift) IsChronological() bool {
	return s.Start.IsValid() && s.End.IsValid() && s.Start.IsBefore(s.End)
}

// Overlaps reports open-interval overlap with another shift.
// Shifts that merely touch at a boundary do not overlap.
func (s TimeShift) Overlaps(other TimeShift) bool {
	return s.Start.IsBefore(other.End) && s.End.IsAfter(other.Start)
}

// ShiftsOverlap reports whether any pair of shifts overlaps
func ShiftsOverlap(shifts []TimeShift) bool {
	for i := 0; i < len(shifts); i++ {
		for j := i + 1; j < len(shifts); j++ {
			if shifts[i].Overlaps(shifts[j]) {
				return true
			}
		}
	}
	return false
}

// DaySchedule represents one weekday's opening state and its shifts.
// When IsOpen is false, Shifts is irrelevant and cleared on toggle-off.
type DaySchedule struct {
	IsOpen bool        `json:"isOpen"`
	Shifts []TimeShift `json:"shifts"`
}

// HasWorkingHours returns true if the day is open with at least one shift
func (d DaySchedule) HasWorkingHours() bool {
	return d.IsOpen && len(d.Shifts) > 0
}

// WeeklySchedule maps each of the seven weekdays to exactly one DaySchedule
type WeeklySchedule map[Weekday]DaySchedule

// DefaultWeeklySchedule returns the factory default: every day open
// 09:00-17:00 except Sunday, which is closed with no shifts.
func DefaultWeeklySchedule() WeeklySchedule {
	schedule := make(WeeklySchedule, len(WeekdaysInOrder))
	for _, day := range WeekdaysInOrder {
		if day == Sunday {
			schedule[day] = DaySchedule{IsOpen: false, Shifts: []TimeShift{}}
			continue
		}
		schedule[day] = DaySchedule{
			IsOpen: true,
			Shifts: []TimeShift{{Start: DefaultShiftStart, End: DefaultShiftEnd}},
		}
	}
	return schedule
}

// Clone returns a deep copy of the schedule
func (s WeeklySchedule) Clone() WeeklySchedule {
	cloned := make(WeeklySchedule, len(s))
	for day, daySchedule := range s {
		shifts := make([]TimeShift, len(daySchedule.Shifts))
		copy(shifts, daySchedule.Shifts)
		cloned[day] = DaySchedule{IsOpen: daySchedule.IsOpen, Shifts: shifts}
	}
	return cloned
}
