package appointments

import (
	"context"

	"github.com/kly4ev/SDA-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория бронирований
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByClientID(ctx context.Context, clientID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
	Cancel(ctx context.Context, id int64, status domain.AppointmentStatus, reason string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
