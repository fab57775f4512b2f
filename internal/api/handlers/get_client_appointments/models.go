package get_client_appointments

import (
	"time"

	"github.com/kly4ev/SDA-BookingService/internal/domain"
	"github.com/kly4ev/SDA-BookingService/internal/service/appointments/models"
)

// appointmentPayload HTTP модель бронирования в списке
type appointmentPayload struct {
	ID         int64  `json:"id"`
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

	CreatedAt string `json:"createdAt"`
}

// listPayload HTTP модель списка бронирований клиента
type listPayload struct {
	Appointments []*appointmentPayload `json:"appointments"`
	Total        int                   `json:"total"`
}

// toListPayload конвертирует список сервиса в HTTP ответ
func toListPayload(list *models.AppointmentListResponse) *listPayload {
	appointments := make([]*appointmentPayload, len(list.Appointments))
	for i, appt := range list.Appointments {
		appointments[i] = &appointmentPayload{
			ID:              appt.ID,
			ResourceID:      appt.ResourceID,
			SalonID:         appt.SalonID,
			ServiceID:       appt.ServiceID,
			MasterID:        appt.MasterID,
			Date:            appt.Date.Format(domain.DateFormat),
			StartTime:       appt.StartTime,
			DurationMinutes: appt.DurationMinutes,
			Status:          appt.Status,
			ServiceName:     appt.ServiceName,
			PriceSnapshot:   appt.PriceSnapshot,
			CreatedAt:       appt.CreatedAt.Format(time.RFC3339),
		}
	}
	return &listPayload{
		Appointments: appointments,
		Total:        list.Total,
	}
}
