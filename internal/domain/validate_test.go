package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDay(shifts ...TimeShift) DaySchedule {
	return DaySchedule{IsOpen: true, Shifts: shifts}
}

func closedDay() DaySchedule {
	return DaySchedule{IsOpen: false, Shifts: []TimeShift{}}
}

func TestValidateWeeklySchedule_Valid(t *testing.T) {
	schedule := DefaultWeeklySchedule()
	assert.Empty(t, ValidateWeeklySchedule(schedule))
}

func TestValidateWeeklySchedule_PerDayFailures(t *testing.T) {
	tests := []struct {
		name string
		day  DaySchedule
		want string
	}{
		{
			name: "open day without shifts",
			day:  openDay(),
			want: MsgNoShifts,
		},
		{
			name: "shift missing end",
			day:  openDay(TimeShift{Start: "09:00"}),
			want: MsgIncompleteShift,
		},
		{
			name: "shift missing start",
			day:  openDay(TimeShift{End: "17:00"}),
			want: MsgIncompleteShift,
		},
		{
			name: "end before start",
			day:  openDay(TimeShift{Start: "17:00", End: "09:00"}),
			want: MsgEndBeforeStart,
		},
		{
			name: "zero-length shift",
			day:  openDay(TimeShift{Start: "09:00", End: "09:00"}),
			want: MsgEndBeforeStart,
		},
		{
			name: "overlapping shifts",
			day: openDay(
				TimeShift{Start: "09:00", End: "13:00"},
				TimeShift{Start: "12:00", End: "17:00"},
			),
			want: MsgOverlappingShift,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := WeeklySchedule{Monday: tt.day}
			errs := ValidateWeeklySchedule(schedule)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.want, errs[Monday])
		})
	}
}

func TestValidateWeeklySchedule_FirstFailureWins(t *testing.T) {
	// Incomplete shift is reported before the overlap the same day also has
	schedule := WeeklySchedule{
		Tuesday: openDay(
			TimeShift{Start: "09:00"},
			TimeShift{Start: "08:00", End: "18:00"},
			TimeShift{Start: "10:00", End: "11:00"},
		),
	}

	errs := ValidateWeeklySchedule(schedule)
	require.Len(t, errs, 1)
	assert.Equal(t, MsgIncompleteShift, errs[Tuesday])
}

func TestValidateWeeklySchedule_DaysAreIndependent(t *testing.T) {
	schedule := WeeklySchedule{
		Monday:    openDay(TimeShift{Start: "09:00", End: "17:00"}),
		Tuesday:   openDay(),
		Wednesday: openDay(TimeShift{Start: "17:00", End: "09:00"}),
		Thursday:  closedDay(),
	}

	errs := ValidateWeeklySchedule(schedule)
	require.Len(t, errs, 2)
	assert.Equal(t, MsgNoShifts, errs[Tuesday])
	assert.Equal(t, MsgEndBeforeStart, errs[Wednesday])
	assert.NotContains(t, errs, Monday)
}

func TestValidateWeeklySchedule_ClosedDaysNeverValidated(t *testing.T) {
	// A closed day with broken shifts must not produce an error
	schedule := WeeklySchedule{
		Sunday: {IsOpen: false, Shifts: []TimeShift{{Start: "17:00", End: "09:00"}}},
	}

	assert.Empty(t, ValidateWeeklySchedule(schedule))
}

func TestValidateWeeklySchedule_Deterministic(t *testing.T) {
	schedule := WeeklySchedule{
		Monday:  openDay(),
		Friday:  openDay(TimeShift{Start: "10:00", End: "09:00"}),
		Sunday:  closedDay(),
		Tuesday: openDay(TimeShift{Start: "09:00", End: "17:00"}),
	}

	first := ValidateWeeklySchedule(schedule)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ValidateWeeklySchedule(schedule))
	}
}

func TestShiftsOverlap(t *testing.T) {
	tests := []struct {
		name   string
		shifts []TimeShift
		want   bool
	}{
		{
			name:   "single shift never overlaps",
			shifts: []TimeShift{{Start: "09:00", End: "17:00"}},
			want:   false,
		},
		{
			name: "touching boundaries do not overlap",
			shifts: []TimeShift{
				{Start: "09:00", End: "13:00"},
				{Start: "13:00", End: "17:00"},
			},
			want: false,
		},
		{
			name: "nested shift overlaps",
			shifts: []TimeShift{
				{Start: "09:00", End: "17:00"},
				{Start: "10:00", End: "11:00"},
			},
			want: true,
		},
		{
			name: "partial overlap",
			shifts: []TimeShift{
				{Start: "09:00", End: "13:00"},
				{Start: "12:00", End: "17:00"},
			},
			want: true,
		},
		{
			name: "identical shifts overlap",
			shifts: []TimeShift{
				{Start: "09:00", End: "17:00"},
				{Start: "09:00", End: "17:00"},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShiftsOverlap(tt.shifts))

			// overlap is symmetric in shift order
			reversed := make([]TimeShift, len(tt.shifts))
			for i, s := range tt.shifts {
				reversed[len(tt.shifts)-1-i] = s
			}
			assert.Equal(t, tt.want, ShiftsOverlap(reversed))
		})
	}
}
