package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAvailabilityRecord_Redundancy(t *testing.T) {
	schedule := WeeklySchedule{
		Monday:    openDay(TimeShift{Start: "09:00", End: "17:00"}),
		Tuesday:   closedDay(),
		Wednesday: openDay(), // open but no shifts: not a working day on the wire
		Sunday:    closedDay(),
	}

	record := BuildAvailabilityRecord(schedule, nil)

	// A day appears in open_days iff it is open with at least one shift,
	// and working_hours holds an entry for exactly those days
	assert.Equal(t, []Weekday{Monday}, record.OpenDays)
	require.Contains(t, record.WorkingHours, Monday)
	assert.NotContains(t, record.WorkingHours, Tuesday)
	assert.NotContains(t, record.WorkingHours, Wednesday)

	assert.NotNil(t, record.Exceptions)
	assert.Empty(t, record.Exceptions)
}

func TestAvailabilityRecord_RoundTrip(t *testing.T) {
	original := WeeklySchedule{
		Monday:    openDay(TimeShift{Start: "09:00", End: "13:00"}, TimeShift{Start: "14:00", End: "18:00"}),
		Tuesday:   openDay(TimeShift{Start: "10:00", End: "16:00"}),
		Wednesday: closedDay(),
		Thursday:  openDay(TimeShift{Start: "09:00", End: "17:00"}),
		Friday:    openDay(TimeShift{Start: "09:00", End: "17:00"}),
		Saturday:  closedDay(),
		Sunday:    closedDay(),
	}
	require.Empty(t, ValidateWeeklySchedule(original))

	record := BuildAvailabilityRecord(original, nil)
	restored := record.WeeklySchedule()

	for _, day := range WeekdaysInOrder {
		assert.Equal(t, original[day].HasWorkingHours(), restored[day].IsOpen, "day %s", day)
		if original[day].HasWorkingHours() {
			assert.Equal(t, original[day].Shifts, restored[day].Shifts, "day %s", day)
		}
	}
}

func TestAvailabilityRecord_WeeklySchedule_AbsentDaysClosed(t *testing.T) {
	record := AvailabilityRecord{
		WorkingHours: map[Weekday][]TimeShift{
			Friday: {{Start: "09:00", End: "17:00"}},
		},
		OpenDays: []Weekday{Friday},
	}

	schedule := record.WeeklySchedule()

	// All seven weekdays are always present after reconstruction
	assert.Len(t, schedule, 7)
	for _, day := range WeekdaysInOrder {
		if day == Friday {
			assert.True(t, schedule[day].IsOpen)
			continue
		}
		assert.False(t, schedule[day].IsOpen, "day %s", day)
		assert.Empty(t, schedule[day].Shifts, "day %s", day)
	}
}

func TestDefaultWeeklySchedule(t *testing.T) {
	schedule := DefaultWeeklySchedule()

	require.Len(t, schedule, 7)
	for _, day := range WeekdaysInOrder {
		if day == Sunday {
			assert.False(t, schedule[day].IsOpen)
			assert.Empty(t, schedule[day].Shifts)
			continue
		}
		assert.True(t, schedule[day].IsOpen, "day %s", day)
		assert.Equal(t, []TimeShift{{Start: DefaultShiftStart, End: DefaultShiftEnd}}, schedule[day].Shifts, "day %s", day)
	}

	assert.Empty(t, ValidateWeeklySchedule(schedule))
}

func TestWeeklySchedule_Clone(t *testing.T) {
	original := WeeklySchedule{
		Monday: openDay(TimeShift{Start: "09:00", End: "17:00"}),
	}

	cloned := original.Clone()
	cloned[Monday].Shifts[0] = TimeShift{Start: "00:00", End: "01:00"}

	assert.Equal(t, TimeShift{Start: "09:00", End: "17:00"}, original[Monday].Shifts[0])
}
