package get_suggestions

import (
	"context"
	"time"

	"github.com/kly4ev/SDA-BookingService/internal/domain"
)

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Resource, error)
}

// AppointmentRepository интерфейс репозитория бронирований
type AppointmentRepository interface {
	GetForDate(ctx context.Context, resourceID int64, date time.Time) ([]*domain.Appointment, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
