package transactor

import (
	"context"
	"time"

	"github.com/kly4ev/SDA-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория бронирований
type AppointmentRepository interface {
	GetForDate(ctx context.Context, resourceID int64, date time.Time) ([]*domain.Appointment, error)
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
