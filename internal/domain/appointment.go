package domain

import (
	"time"

	"github.com/kly4ev/SDA-BookingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed         AppointmentStatus = "confirmed"
	StatusCompleted         AppointmentStatus = "completed"
	StatusCancelledByClient AppointmentStatus = "cancelled_by_client"
	StatusCancelledBySalon  AppointmentStatus = "cancelled_by_salon"
)

// Appointment represents a committed reservation of a resource
type Appointment struct {
	ID         int64
	ClientID   int64
	ResourceID int64
	SalonID    int64
	ServiceID  int64
	MasterID   *int64

	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized snapshot taken at booking time
	ServiceName   string
	PriceSnapshot float64

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelledByClient || a.Status == StatusCancelledBySalon
}

// Blocks returns true if the appointment occupies its time window.
// A cancelled slot is free.
func (a *Appointment) Blocks() bool {
	return !a.IsCancelled()
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusConfirmed
}

// Window returns the [start, end) time window occupied by the appointment
func (a *Appointment) Window() (TimeWindow, error) {
	return NewTimeWindow(a.StartTime, a.DurationMinutes)
}
