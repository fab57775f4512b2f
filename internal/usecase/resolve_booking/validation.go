package resolve_booking

import (
	"fmt"
	"time"

	"github.com/kly4ev/SDA-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Выполняется до любого обращения к хранилищу
func validateRequest(req *Request, now time.Time) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if isDateInPast(req.Date, now) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Preferences != nil && len(*req.Preferences) > domain.MaxPreferencesLength {
		return fmt.Errorf("%w: preferences too long", ErrInvalidInput)
	}

	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
