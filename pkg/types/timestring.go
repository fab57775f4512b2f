package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeFormat возвращается при некорректном формате строки времени
var ErrInvalidTimeFormat = errors.New("types: invalid time string format, expected HH:MM")

const minutesPerDay = 24 * 60

// TimeString время в формате "HH:MM" (например, "10:00")
// Используется для времени начала слотов и рабочих часов салона.
// Значение "24:00" допустимо как время закрытия (конец дня).
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет корректность формата HH:MM
func (t TimeString) Validate() error {
	_, err := t.totalMinutes()
	return err
}

// totalMinutes возвращает количество минут с начала дня (0..1440)
func (t TimeString) totalMinutes() (int, error) {
	s := string(t)
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	var hours, minutes int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &hours, &minutes); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	total := hours*60 + minutes
	if hours < 0 || minutes < 0 || minutes > 59 || total > minutesPerDay {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return total, nil
}

// AddMinutes возвращает время, сдвинутое на указанное количество минут вперёд
// Возвращает ошибку, если результат выходит за пределы суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.totalMinutes()
	if err != nil {
		return "", err
	}

	total += minutes
	if total < 0 || total > minutesPerDay {
		return "", fmt.Errorf("%w: %q + %d minutes is outside the day", ErrInvalidTimeFormat, t, minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если t строго раньше other
// Некорректные значения считаются равными нулю минут
func (t TimeString) IsBefore(other TimeString) bool {
	a, _ := t.totalMinutes()
	b, _ := other.totalMinutes()
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, _ := t.totalMinutes()
	b, _ := other.totalMinutes()
	return a > b
}
