package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Suggestion generation constants
const (
	// DefaultMaxSuggestions максимальное число альтернативных слотов в ответе
	DefaultMaxSuggestions = 3

	// SuggestionStepMinutes шаг перебора кандидатов при поиске альтернативных слотов
	// Фиксированный часовой шаг, не зависит от длительности услуги
	SuggestionStepMinutes = 60
)

// Business validation constants
const (
	MaxPreferencesLength        = 500
	MaxCancellationReasonLength = 500
)

// CancelledStatuses список статусов, при которых бронирование освобождает слот
// Используется при фильтрации препятствий в проверке доступности
var CancelledStatuses = []AppointmentStatus{
	StatusCancelledByClient,
	StatusCancelledBySalon,
}
