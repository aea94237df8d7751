package domain

// Per-day validation messages, mirrored by the admin console verbatim
const (
	MsgNoShifts         = "at least one time slot is required for open days"
	MsgIncompleteShift  = "all time slots must have start and end times"
	MsgEndBeforeStart   = "end time must be after start time"
	MsgOverlappingShift = "time slots cannot overlap"
)

// ValidateWeeklySchedule checks every day of the schedule and returns a map
// containing an entry only for days that fail. Per day only the first
// applicable failure is reported, in fixed priority order: missing shifts,
// incomplete shift, non-chronological shift, overlapping shifts. Days are
// independent of each other; closed days are never validated.
//
// The schedule is valid iff the returned map is empty.
func ValidateWeeklySchedule(schedule WeeklySchedule) map[Weekday]string {
	errs := make(map[Weekday]string)

	for _, day := range WeekdaysInOrder {
		daySchedule, ok := schedule[day]
		if !ok || !daySchedule.IsOpen {
			continue
		}

		if msg := validateDaySchedule(daySchedule); msg != "" {
			errs[day] = msg
		}
	}

	return errs
}

func validateDaySchedule(daySchedule DaySchedule) string {
	if len(daySchedule.Shifts) == 0 {
		return MsgNoShifts
	}

	for _, shift := range daySchedule.Shifts {
		if !shift.IsComplete() {
			return MsgIncompleteShift
		}
		if !shift.IsChronological() {
			return MsgEndBeforeStart
		}
	}

	if ShiftsOverlap(daySchedule.Shifts) {
		return MsgOverlappingShift
	}

	return ""
}
