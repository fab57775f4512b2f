package availability

import (
	"github.com/kly4ev/SDA-BookingService/internal/domain"
	"github.com/kly4ev/SDA-BookingService/pkg/types"
)

// Suggest подбирает альтернативные времена начала для услуги указанной длительности.
//
// Кандидаты перебираются с фиксированным часовым шагом от времени открытия
// до последнего старта, при котором услуга заканчивается не позже закрытия.
// Кандидат принимается, если его окно проходит полную проверку Check.
// Перебор останавливается после maxSuggestions принятых кандидатов или
// при исчерпании дня.
//
// Функция чистая: повторный вызов с теми же данными возвращает тот же список.
// Результат — подсказка для клиента, ничего не резервирует.
func Suggest(
	schedule domain.DaySchedule,
	durationMinutes int,
	appointments []*domain.Appointment,
	maxSuggestions int,
) ([]types.TimeString, error) {
	if maxSuggestions <= 0 {
		maxSuggestions = domain.DefaultMaxSuggestions
	}

	suggestions := make([]types.TimeString, 0, maxSuggestions)

	if schedule.Closed() {
		return suggestions, nil
	}

	if err := schedule.OpenTime.Validate(); err != nil {
		return nil, err
	}
	if err := schedule.CloseTime.Validate(); err != nil {
		return nil, err
	}

	candidate := schedule.OpenTime

	for {
		window, err := domain.NewTimeWindow(candidate, durationMinutes)
		if err != nil {
			// Окно вышло за пределы суток — день исчерпан
			break
		}

		if window.End.IsAfter(schedule.CloseTime) {
			break
		}

		if Check(schedule, window, appointments).Available {
			suggestions = append(suggestions, candidate)
			if len(suggestions) >= maxSuggestions {
				break
			}
		}

		next, err := candidate.AddMinutes(domain.SuggestionStepMinutes)
		if err != nil {
			break
		}
		candidate = next
	}

	return suggestions, nil
}
