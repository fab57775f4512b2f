package get_appointment

import (
	"context"

	"github.com/kly4ev/SDA-BookingService/internal/service/appointments/models"
)

// AppointmentsService интерфейс сервиса бронирований
type AppointmentsService interface {
	GetByID(ctx context.Context, id int64, clientID int64) (*models.AppointmentResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
