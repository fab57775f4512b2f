package get_appointment

import (
	"time"

	"github.com/kly4ev/SDA-BookingService/internal/domain"
	"github.com/kly4ev/SDA-BookingService/internal/service/appointments/models"
)

// appointmentPayload HTTP модель бронирования
type appointmentPayload struct {
	ID         int64  `json:"id"`
	ClientID   int64  `json:"clientId"`
	ResourceID int64  `json:"resourceId"`
	SalonID    int64  `json:"salonId"`
	ServiceID  int64  `json:"serviceId"`
	MasterID   *int64 `json:"masterId,omitempty"`

	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	ServiceName   string  `json:"serviceName"`
	PriceSnapshot float64 `json:"priceSnapshot"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// toPayload конвертирует модель сервиса в HTTP ответ
func toPayload(appt *models.AppointmentResponse) *appointmentPayload {
	var cancelledAt *string
	if appt.CancelledAt != nil {
		formatted := appt.CancelledAt.Format(time.RFC3339)
		cancelledAt = &formatted
	}

	return &appointmentPayload{
		ID:                 appt.ID,
		ClientID:           appt.ClientID,
		ResourceID:         appt.ResourceID,
		SalonID:            appt.SalonID,
		ServiceID:          appt.ServiceID,
		MasterID:           appt.MasterID,
		Date:               appt.Date.Format(domain.DateFormat),
		StartTime:          appt.StartTime,
		DurationMinutes:    appt.DurationMinutes,
		Status:             appt.Status,
		ServiceName:        appt.ServiceName,
		PriceSnapshot:      appt.PriceSnapshot,
		CancellationReason: appt.CancellationReason,
		CancelledAt:        cancelledAt,
		CreatedAt:          appt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          appt.UpdatedAt.Format(time.RFC3339),
	}
}
