package models

import (
	"fmt"
	"time"

	"github.com/kly4ev/SDA-BookingService/internal/domain"
)

// AppointmentResponse модель бронирования для внешних слоёв
type AppointmentResponse struct {
	ID         int64
	ClientID   int64
	ResourceID int64
	SalonID    int64
	ServiceID  int64
	MasterID   *int64

	Date            time.Time
	StartTime       string
	DurationMinutes int
	Status          string

	ServiceName   string
	PriceSnapshot float64

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppointmentListResponse список бронирований
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse
	Total        int
}

// GetClientAppointmentsRequest запрос истории бронирований клиента
type GetClientAppointmentsRequest struct {
	ClientID int64
	Status   *string
}

// CancelAppointmentRequest запрос на отмену бронирования
type CancelAppointmentRequest struct {
	ClientID           int64
	CancellationReason string
}

// FromDomainAppointment конвертирует domain модель в response
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                 appt.ID,
		ClientID:           appt.ClientID,
		ResourceID:         appt.ResourceID,
		SalonID:            appt.SalonID,
		ServiceID:          appt.ServiceID,
		MasterID:           appt.MasterID,
		Date:               appt.Date,
		StartTime:          appt.StartTime.String(),
		DurationMinutes:    appt.DurationMinutes,
		Status:             string(appt.Status),
		ServiceName:        appt.ServiceName,
		PriceSnapshot:      appt.PriceSnapshot,
		CancellationReason: appt.CancellationReason,
		CancelledAt:        appt.CancelledAt,
		CreatedAt:          appt.CreatedAt,
		UpdatedAt:          appt.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в response
func FromDomainAppointmentList(appts []*domain.Appointment) *AppointmentListResponse {
	result := make([]*AppointmentResponse, len(appts))
	for i, appt := range appts {
		result[i] = FromDomainAppointment(appt)
	}
	return &AppointmentListResponse{
		Appointments: result,
		Total:        len(result),
	}
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainStatus(s string) (domain.AppointmentStatus, error) {
	status := domain.AppointmentStatus(s)
	switch status {
	case domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelledByClient,
		domain.StatusCancelledBySalon:
		return status, nil
	default:
		return "", fmt.Errorf("unknown appointment status: %q", s)
	}
}
