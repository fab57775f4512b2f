package resolve_booking

import (
	"time"

	"github.com/kly4ev/SDA-BookingService/internal/domain"
	"github.com/kly4ev/SDA-BookingService/pkg/types"
)

// Request модель запроса на разрешение бронирования
// Структурированный результат разбора сообщения клиента
type Request struct {
	ClientID    int64            // ID клиента
	ResourceID  int64            // ID ресурса (салон + услуга [+ мастер])
	Date        time.Time        // Дата бронирования (без времени)
	StartTime   types.TimeString // Запрошенное время начала (например, "10:00")
	Preferences *string          // Свободные пожелания клиента (опционально)
}

// Outcome исход разрешения бронирования
type Outcome string

const (
	// OutcomeBooked слот зарезервирован, бронирование создано
	OutcomeBooked Outcome = "booked"

	// OutcomeSuggestions запрошенный слот занят, предложены альтернативы
	OutcomeSuggestions Outcome = "suggestions"

	// OutcomeRejected запрос отклонён без альтернатив
	OutcomeRejected Outcome = "rejected"
)

// RejectReasonOutsideOperatingHours причина отклонения: вне рабочих часов
const RejectReasonOutsideOperatingHours = "outside_operating_hours"

// Response результат разрешения бронирования - ровно один из трёх исходов
type Response struct {
	Outcome Outcome

	// Appointment заполнено только при Outcome = booked
	Appointment *BookedAppointment

	// Suggestions заполнено только при Outcome = suggestions
	// Список может быть пустым - это явный ответ "альтернатив нет"
	Suggestions []string

	// Reason заполнено только при Outcome = rejected
	Reason string
}

// BookedAppointment созданное бронирование
type BookedAppointment struct {
	ID              int64
	ClientID        int64
	ResourceID      int64
	SalonID         int64
	ServiceID       int64
	MasterID        *int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string
	ServiceName     string
	Price           float64
	CreatedAt       time.Time
}

func bookedResponse(appt *domain.Appointment) *Response {
	return &Response{
		Outcome: OutcomeBooked,
		Appointment: &BookedAppointment{
			ID:              appt.ID,
			ClientID:        appt.ClientID,
			ResourceID:      appt.ResourceID,
			SalonID:         appt.SalonID,
			ServiceID:       appt.ServiceID,
			MasterID:        appt.MasterID,
			Date:            appt.Date,
			StartTime:       appt.StartTime,
			DurationMinutes: appt.DurationMinutes,
			Status:          string(appt.Status),
			ServiceName:     appt.ServiceName,
			Price:           appt.PriceSnapshot,
			CreatedAt:       appt.CreatedAt,
		},
	}
}

func suggestionsResponse(times []types.TimeString) *Response {
	suggestions := make([]string, len(times))
	for i, t := range times {
		suggestions[i] = t.String()
	}
	return &Response{
		Outcome:     OutcomeSuggestions,
		Suggestions: suggestions,
	}
}

func rejectedResponse(reason string) *Response {
	return &Response{
		Outcome: OutcomeRejected,
		Reason:  reason,
	}
}
