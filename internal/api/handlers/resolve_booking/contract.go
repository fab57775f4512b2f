package resolve_booking

import (
	"context"
	"time"

	"github.com/kly4ev/SDA-BookingService/internal/integrations/parserservice"
	usecase "github.com/kly4ev/SDA-BookingService/internal/usecase/resolve_booking"
)

// ResolveBookingUseCase интерфейс use case разрешения бронирования
type ResolveBookingUseCase interface {
	Execute(ctx context.Context, req *usecase.Request) (*usecase.Response, error)
}

// TextParser интерфейс разбора свободного текста клиента
type TextParser interface {
	Parse(ctx context.Context, text string, referenceDate time.Time) (*parserservice.ParsedBooking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
