package domain

// AvailabilityRecord is the wire format of a business's availability.
// open_days and working_hours are a redundant encoding of the weekly
// schedule kept for compatibility with the pre-existing record shape:
// a day appears in OpenDays iff it is open with at least one shift, and
// WorkingHours holds an entry for exactly those days. The redundancy is
// confined to this type; WeeklySchedule is the single source of truth
// everywhere else.
type AvailabilityRecord struct {
	WorkingHours map[Weekday][]TimeShift `json:"working_hours"`
	OpenDays     []Weekday               `json:"open_days"`
	Exceptions   []Exception             `json:"exceptions"`
}

// BuildAvailabilityRecord converts a weekly schedule plus exceptions into
// the wire format, deriving the open_days / working_hours redundancy
func BuildAvailabilityRecord(schedule WeeklySchedule, exceptions []Exception) AvailabilityRecord {
	workingHours := make(map[Weekday][]TimeShift)
	openDays := make([]Weekday, 0, len(WeekdaysInOrder))

	for _, day := range WeekdaysInOrder {
		daySchedule := schedule[day]
		if !daySchedule.HasWorkingHours() {
			continue
		}
		shifts := make([]TimeShift, len(daySchedule.Shifts))
		copy(shifts, daySchedule.Shifts)
		workingHours[day] = shifts
		openDays = append(openDays, day)
	}

	if exceptions == nil {
		exceptions = []Exception{}
	}

	return AvailabilityRecord{
		WorkingHours: workingHours,
		OpenDays:     openDays,
		Exceptions:   exceptions,
	}
}

// WeeklySchedule reconstructs the in-memory schedule from the wire format.
// Days absent from open_days come back closed with no shifts.
func (r AvailabilityRecord) WeeklySchedule() WeeklySchedule {
	openSet := make(map[Weekday]bool, len(r.OpenDays))
	for _, day := range r.OpenDays {
		openSet[day] = true
	}

	schedule := make(WeeklySchedule, len(WeekdaysInOrder))
	for _, day := range WeekdaysInOrder {
		shifts := make([]TimeShift, len(r.WorkingHours[day]))
		copy(shifts, r.WorkingHours[day])
		schedule[day] = DaySchedule{
			IsOpen: openSet[day],
			Shifts: shifts,
		}
	}
	return schedule
}
