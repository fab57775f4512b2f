package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 9, 14, 10, 5, 33, 0, time.UTC)
	assert.Equal(t, TimeString("10:05"), NewTimeString(moment))
}

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid morning", input: "09:00"},
		{name: "valid midnight", input: "00:00"},
		{name: "valid end of day", input: "24:00"},
		{name: "valid last minute", input: "23:59"},
		{name: "missing leading zero", input: "9:00", wantErr: true},
		{name: "minutes out of range", input: "10:60", wantErr: true},
		{name: "past end of day", input: "24:01", wantErr: true},
		{name: "not a time", input: "abcde", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "wrong separator", input: "10.00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
		wantErr bool
	}{
		{name: "within hour", start: "10:00", minutes: 30, want: "10:30"},
		{name: "across hour", start: "10:45", minutes: 30, want: "11:15"},
		{name: "to end of day", start: "23:00", minutes: 60, want: "24:00"},
		{name: "past end of day", start: "23:30", minutes: 60, wantErr: true},
		{name: "negative within day", start: "10:00", minutes: -60, want: "09:00"},
		{name: "negative past midnight", start: "00:30", minutes: -60, wantErr: true},
		{name: "invalid source", start: "nope!", minutes: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("11:00").IsBefore("10:00"))

	assert.True(t, TimeString("11:00").IsAfter("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
	assert.False(t, TimeString("09:00").IsAfter("10:00"))
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("00:00").IsZero())
}
