package get_suggestions

import (
	"fmt"
	"time"
)

// maxSuggestionsLimit верхняя граница числа вариантов в одном запросе
const maxSuggestionsLimit = 20

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if isDateInPast(req.Date, now) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidInput)
	}

	if req.MaxSuggestions < 0 || req.MaxSuggestions > maxSuggestionsLimit {
		return fmt.Errorf("%w: maxSuggestions must be between 0 and %d", ErrInvalidInput, maxSuggestionsLimit)
	}

	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
