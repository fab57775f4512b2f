package domain

import (
	"time"

	"github.com/kly4ev/SDA-BookingService/pkg/types"
)

// DaySchedule describes the salon's opening interval for a single weekday
type DaySchedule struct {
	IsOpen    bool
	OpenTime  types.TimeString
	CloseTime types.TimeString
}

// Closed returns true if the salon does not open on this day.
// A missing interval is treated the same as an explicit "closed" entry.
func (d DaySchedule) Closed() bool {
	return !d.IsOpen || d.OpenTime.IsZero() || d.CloseTime.IsZero()
}

// WeeklyHours is the salon's weekly opening-hours table
type WeeklyHours struct {
	Monday    DaySchedule
	Tuesday   DaySchedule
	Wednesday DaySchedule
	Thursday  DaySchedule
	Friday    DaySchedule
	Saturday  DaySchedule
	Sunday    DaySchedule
}

// For returns the schedule for the weekday of the given date
func (h WeeklyHours) For(date time.Time) DaySchedule {
	switch date.Weekday() {
	case time.Monday:
		return h.Monday
	case time.Tuesday:
		return h.Tuesday
	case time.Wednesday:
		return h.Wednesday
	case time.Thursday:
		return h.Thursday
	case time.Friday:
		return h.Friday
	case time.Saturday:
		return h.Saturday
	case time.Sunday:
		return h.Sunday
	default:
		return DaySchedule{IsOpen: false}
	}
}

// Resource is a bookable (salon, service[, master]) unit.
// Read-only within this service; salon management owns mutation.
type Resource struct {
	ID        int64
	SalonID   int64
	ServiceID int64
	MasterID  *int64 // nil = any master at the salon

	ServiceName     string
	DurationMinutes int
	Price           float64

	Hours WeeklyHours
}

// BookingRequest is the structured output of upstream request parsing.
// Created per client message and consumed once; never persisted here.
type BookingRequest struct {
	ResourceID  int64
	Date        time.Time
	StartTime   types.TimeString
	Preferences *string
}
