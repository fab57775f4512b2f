package resolve_booking

import (
	"time"

	usecase "github.com/kly4ev/SDA-BookingService/internal/usecase/resolve_booking"
	"github.com/kly4ev/SDA-BookingService/pkg/types"
)

// resolveBookingRequest HTTP модель запроса на разрешение бронирования
// Либо структурированные поля (resourceId + date + startTime),
// либо свободный текст в поле text - тогда запрос сначала уходит в парсер
type resolveBookingRequest struct {
	ResourceID  int64   `json:"resourceId,omitempty"`
	Date        string  `json:"date,omitempty"`
	StartTime   string  `json:"startTime,omitempty"`
	Preferences *string `json:"preferences,omitempty"`
	Text        string  `json:"text,omitempty"`
}

// isStructured проверяет, что запрос заполнен структурированными полями
func (r *resolveBookingRequest) isStructured() bool {
	return r.ResourceID != 0 && r.Date != "" && r.StartTime != ""
}

// appointmentPayload HTTP модель созданного бронирования
type appointmentPayload struct {
	ID              int64   `json:"id"`
	ClientID        int64   `json:"clientId"`
	ResourceID      int64   `json:"resourceId"`
	SalonID         int64   `json:"salonId"`
	ServiceID       int64   `json:"serviceId"`
	MasterID        *int64  `json:"masterId,omitempty"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ServiceName     string  `json:"serviceName"`
	Price           float64 `json:"price"`
	CreatedAt       string  `json:"createdAt"`
}

// bookedPayload ответ с исходом booked
type bookedPayload struct {
	Outcome     string              `json:"outcome"`
	Appointment *appointmentPayload `json:"appointment"`
}

// suggestionsPayload ответ с исходом suggestions
// Пустой список - явный ответ "альтернатив нет"
type suggestionsPayload struct {
	Outcome     string   `json:"outcome"`
	Suggestions []string `json:"suggestions"`
}

// rejectedPayload ответ с исходом rejected
type rejectedPayload struct {
	Outcome string `json:"outcome"`
	Reason  string `json:"reason"`
}

// toUseCaseRequest конвертирует HTTP запрос в модель use case
func toUseCaseRequest(req *resolveBookingRequest, clientID int64, date time.Time) *usecase.Request {
	return &usecase.Request{
		ClientID:    clientID,
		ResourceID:  req.ResourceID,
		Date:        date,
		StartTime:   types.TimeString(req.StartTime),
		Preferences: req.Preferences,
	}
}

// toPayload конвертирует результат use case в HTTP ответ
func toPayload(resp *usecase.Response, dateFormat string) interface{} {
	switch resp.Outcome {
	case usecase.OutcomeBooked:
		appt := resp.Appointment
		return &bookedPayload{
			Outcome: string(resp.Outcome),
			Appointment: &appointmentPayload{
				ID:              appt.ID,
				ClientID:        appt.ClientID,
				ResourceID:      appt.ResourceID,
				SalonID:         appt.SalonID,
				ServiceID:       appt.ServiceID,
				MasterID:        appt.MasterID,
				Date:            appt.Date.Format(dateFormat),
				StartTime:       appt.StartTime.String(),
				DurationMinutes: appt.DurationMinutes,
				Status:          appt.Status,
				ServiceName:     appt.ServiceName,
				Price:           appt.Price,
				CreatedAt:       appt.CreatedAt.Format(time.RFC3339),
			},
		}
	case usecase.OutcomeSuggestions:
		suggestions := resp.Suggestions
		if suggestions == nil {
			suggestions = []string{}
		}
		return &suggestionsPayload{
			Outcome:     string(resp.Outcome),
			Suggestions: suggestions,
		}
	default:
		return &rejectedPayload{
			Outcome: string(resp.Outcome),
			Reason:  resp.Reason,
		}
	}
}
