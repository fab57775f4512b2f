package resolve_booking

import (
	"context"
	"time"

	"github.com/kly4ev/SDA-BookingService/internal/domain"
	"github.com/kly4ev/SDA-BookingService/internal/integrations/notifyservice"
	"github.com/kly4ev/SDA-BookingService/pkg/types"
)

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Resource, error)
}

// AppointmentRepository интерфейс репозитория бронирований
type AppointmentRepository interface {
	GetForDate(ctx context.Context, resourceID int64, date time.Time) ([]*domain.Appointment, error)
}

// BookingTransactor интерфейс атомарного коммита бронирования
type BookingTransactor interface {
	Commit(ctx context.Context, resource *domain.Resource, clientID int64, date time.Time, start types.TimeString) (*domain.Appointment, error)
}

// Notifier интерфейс клиента для NotifyService
type Notifier interface {
	NotifyBookingConfirmed(ctx context.Context, event *notifyservice.BookingConfirmedEvent) error
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
