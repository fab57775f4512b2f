package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kly4ev/SDA-BookingService/internal/domain"
	"github.com/kly4ev/SDA-BookingService/pkg/types"
)

func openDay(open, close types.TimeString) domain.DaySchedule {
	return domain.DaySchedule{IsOpen: true, OpenTime: open, CloseTime: close}
}

func appt(start types.TimeString, durationMinutes int, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		StartTime:       start,
		DurationMinutes: durationMinutes,
		Status:          status,
	}
}

func window(t *testing.T, start types.TimeString, durationMinutes int) domain.TimeWindow {
	t.Helper()
	w, err := domain.NewTimeWindow(start, durationMinutes)
	require.NoError(t, err)
	return w
}

func TestCheck(t *testing.T) {
	schedule := openDay("09:00", "17:00")

	tests := []struct {
		name         string
		schedule     domain.DaySchedule
		window       domain.TimeWindow
		appointments []*domain.Appointment
		wantOk       bool
		wantReason   Reason
	}{
		{
			name:     "free slot in empty day",
			schedule: schedule,
			window:   window(t, "10:00", 60),
			wantOk:   true,
		},
		{
			name:       "closed day",
			schedule:   domain.DaySchedule{IsOpen: false},
			window:     window(t, "10:00", 60),
			wantOk:     false,
			wantReason: ReasonOutsideOperatingHours,
		},
		{
			name:       "starts before opening",
			schedule:   schedule,
			window:     window(t, "08:30", 60),
			wantOk:     false,
			wantReason: ReasonOutsideOperatingHours,
		},
		{
			name:       "ends after closing",
			schedule:   schedule,
			window:     window(t, "16:30", 60),
			wantOk:     false,
			wantReason: ReasonOutsideOperatingHours,
		},
		{
			name:     "ends exactly at closing",
			schedule: schedule,
			window:   window(t, "16:00", 60),
			wantOk:   true,
		},
		{
			name:     "overlaps confirmed appointment",
			schedule: schedule,
			window:   window(t, "10:30", 60),
			appointments: []*domain.Appointment{
				appt("10:00", 60, domain.StatusConfirmed),
			},
			wantOk:     false,
			wantReason: ReasonSlotTaken,
		},
		{
			name:     "touching appointment end does not conflict",
			schedule: schedule,
			window:   window(t, "11:00", 60),
			appointments: []*domain.Appointment{
				appt("10:00", 60, domain.StatusConfirmed),
			},
			wantOk: true,
		},
		{
			name:     "cancelled appointment frees the slot",
			schedule: schedule,
			window:   window(t, "10:00", 60),
			appointments: []*domain.Appointment{
				appt("10:00", 60, domain.StatusCancelledByClient),
			},
			wantOk: true,
		},
		{
			name:     "completed appointment still blocks",
			schedule: schedule,
			window:   window(t, "10:00", 60),
			appointments: []*domain.Appointment{
				appt("10:00", 60, domain.StatusCompleted),
			},
			wantOk:     false,
			wantReason: ReasonSlotTaken,
		},
		{
			name:     "operating hours checked before conflicts",
			schedule: schedule,
			window:   window(t, "08:00", 60),
			appointments: []*domain.Appointment{
				appt("08:00", 60, domain.StatusConfirmed),
			},
			wantOk:     false,
			wantReason: ReasonOutsideOperatingHours,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Check(tt.schedule, tt.window, tt.appointments)
			assert.Equal(t, tt.wantOk, decision.Available)
			if !tt.wantOk {
				assert.Equal(t, tt.wantReason, decision.Reason)
			}
		})
	}
}

func TestCheck_IsPure(t *testing.T) {
	schedule := openDay("09:00", "17:00")
	w := window(t, "10:00", 60)
	appointments := []*domain.Appointment{appt("12:00", 60, domain.StatusConfirmed)}

	first := Check(schedule, w, appointments)
	second := Check(schedule, w, appointments)

	assert.Equal(t, first, second)
}
