package get_client_appointments

import (
	"context"

	"github.com/kly4ev/SDA-BookingService/internal/service/appointments/models"
)

// AppointmentsService интерфейс сервиса бронирований
type AppointmentsService interface {
	GetClientAppointments(ctx context.Context, req *models.GetClientAppointmentsRequest) (*models.AppointmentListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
