package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "09:00", want: "09:00"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid last minute", input: "23:59", want: "23:59"},
		{name: "hours out of range", input: "24:00", wantErr: true},
		{name: "minutes out of range", input: "12:60", wantErr: true},
		{name: "missing zero padding", input: "9:00", wantErr: true},
		{name: "no separator", input: "0900", wantErr: true},
		{name: "wrong separator", input: "09.00", wantErr: true},
		{name: "trailing garbage", input: "09:00x", wantErr: true},
		{name: "letters", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		name  string
		input TimeString
		want  int
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "morning", input: "09:30", want: 570},
		{name: "last minute", input: "23:59", want: 1439},
		{name: "invalid", input: "garbage", want: -1},
		{name: "empty", input: "", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.Minutes())
		})
	}
}

func TestMinutesRoundTrip(t *testing.T) {
	// Every minute of the day survives the string<->minutes round trip
	for m := 0; m < 24*60; m++ {
		ts, err := NewTimeStringFromMinutes(m)
		require.NoError(t, err)
		assert.Equal(t, m, ts.Minutes())
	}
}

func TestNewTimeStringFromMinutes_OutOfRange(t *testing.T) {
	_, err := NewTimeStringFromMinutes(-1)
	assert.Error(t, err)

	_, err = NewTimeStringFromMinutes(24 * 60)
	assert.Error(t, err)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("17:00"))
	assert.False(t, TimeString("17:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	assert.True(t, TimeString("17:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("17:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), ts)

	// no wraparound past midnight
	_, err = TimeString("23:30").AddMinutes(60)
	assert.Error(t, err)
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 3, 15, 9, 5, 59, 0, time.UTC)
	assert.Equal(t, TimeString("09:05"), NewTimeString(moment))
}
