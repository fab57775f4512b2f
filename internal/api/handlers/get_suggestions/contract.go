package get_suggestions

import (
	"context"

	usecase "github.com/kly4ev/SDA-BookingService/internal/usecase/get_suggestions"
)

// GetSuggestionsUseCase интерфейс use case подбора доступных времён
type GetSuggestionsUseCase interface {
	Execute(ctx context.Context, req *usecase.Request) (*usecase.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
