package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kly4ev/SDA-BookingService/internal/domain"
	"github.com/kly4ev/SDA-BookingService/pkg/types"
)

func TestSuggest(t *testing.T) {
	tests := []struct {
		name            string
		schedule        domain.DaySchedule
		durationMinutes int
		appointments    []*domain.Appointment
		maxSuggestions  int
		want            []types.TimeString
	}{
		{
			name:            "skips busy hour and keeps chronological order",
			schedule:        openDay("09:00", "17:00"),
			durationMinutes: 60,
			appointments: []*domain.Appointment{
				appt("10:00", 60, domain.StatusConfirmed),
			},
			maxSuggestions: 3,
			want:           []types.TimeString{"09:00", "11:00", "12:00"},
		},
		{
			name:            "empty day returns first candidates",
			schedule:        openDay("09:00", "17:00"),
			durationMinutes: 60,
			maxSuggestions:  3,
			want:            []types.TimeString{"09:00", "10:00", "11:00"},
		},
		{
			name:            "closed day yields no suggestions",
			schedule:        domain.DaySchedule{IsOpen: false},
			durationMinutes: 60,
			maxSuggestions:  3,
			want:            []types.TimeString{},
		},
		{
			name:            "fully booked day yields empty list",
			schedule:        openDay("09:00", "11:00"),
			durationMinutes: 60,
			appointments: []*domain.Appointment{
				appt("09:00", 60, domain.StatusConfirmed),
				appt("10:00", 60, domain.StatusConfirmed),
			},
			maxSuggestions: 3,
			want:           []types.TimeString{},
		},
		{
			name:            "last start ends exactly at closing",
			schedule:        openDay("09:00", "12:00"),
			durationMinutes: 60,
			maxSuggestions:  5,
			want:            []types.TimeString{"09:00", "10:00", "11:00"},
		},
		{
			name:            "long service limits candidate range",
			schedule:        openDay("09:00", "12:00"),
			durationMinutes: 120,
			maxSuggestions:  5,
			want:            []types.TimeString{"09:00", "10:00"},
		},
		{
			name:            "zero max falls back to default",
			schedule:        openDay("09:00", "17:00"),
			durationMinutes: 60,
			maxSuggestions:  0,
			want:            []types.TimeString{"09:00", "10:00", "11:00"},
		},
		{
			name:            "cancelled appointment does not exclude its hour",
			schedule:        openDay("09:00", "17:00"),
			durationMinutes: 60,
			appointments: []*domain.Appointment{
				appt("09:00", 60, domain.StatusCancelledBySalon),
			},
			maxSuggestions: 2,
			want:           []types.TimeString{"09:00", "10:00"},
		},
		{
			name:            "late open avoids crossing midnight",
			schedule:        openDay("22:00", "24:00"),
			durationMinutes: 60,
			maxSuggestions:  5,
			want:            []types.TimeString{"22:00", "23:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Suggest(tt.schedule, tt.durationMinutes, tt.appointments, tt.maxSuggestions)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Every suggested start must itself pass the availability check.
func TestSuggest_OnlyReturnsAvailableStarts(t *testing.T) {
	schedule := openDay("09:00", "18:00")
	appointments := []*domain.Appointment{
		appt("09:00", 90, domain.StatusConfirmed),
		appt("12:00", 30, domain.StatusConfirmed),
		appt("15:00", 60, domain.StatusCompleted),
	}

	got, err := Suggest(schedule, 60, appointments, 10)
	require.NoError(t, err)
	require.NotEmpty(t, got)

	for _, start := range got {
		w, err := domain.NewTimeWindow(start, 60)
		require.NoError(t, err)
		assert.True(t, Check(schedule, w, appointments).Available, "suggested start %s must be available", start)
	}
}

func TestSuggest_IsRestartable(t *testing.T) {
	schedule := openDay("09:00", "17:00")
	appointments := []*domain.Appointment{appt("11:00", 60, domain.StatusConfirmed)}

	first, err := Suggest(schedule, 60, appointments, 3)
	require.NoError(t, err)
	second, err := Suggest(schedule, 60, appointments, 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
