package get_suggestions

import (
	"context"
	"errors"
	"fmt"

	"github.com/kly4ev/SDA-BookingService/internal/domain"
	resourceRepo "github.com/kly4ev/SDA-BookingService/internal/infra/storage/resource"
	"github.com/kly4ev/SDA-BookingService/internal/service/availability"
)

// UseCase use case предпросмотра доступных времён начала
// Используется клиентским приложением для подсказок до отправки запроса
// на бронирование. Коммит всё равно повторит проверку под транзакцией.
type UseCase struct {
	resourceRepo ResourceRepository
	apptRepo     AppointmentRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	resourceRepo ResourceRepository,
	apptRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		resourceRepo: resourceRepo,
		apptRepo:     apptRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет подбор доступных времён начала
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSuggestions: resource=%d, date=%s, max=%d",
		req.ResourceID, req.Date.Format(domain.DateFormat), req.MaxSuggestions)

	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("GetSuggestions: validation failed: %v", err)
		return nil, err
	}

	resource, err := uc.resourceRepo.GetByID(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			uc.logger.Warn("GetSuggestions: resource id=%d not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("GetSuggestions: failed to get resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}

	appointments, err := uc.apptRepo.GetForDate(ctx, resource.ID, req.Date)
	if err != nil {
		uc.logger.Error("GetSuggestions: failed to get appointments for resource=%d: %v", resource.ID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	schedule := resource.Hours.For(req.Date)

	times, err := availability.Suggest(schedule, resource.DurationMinutes, appointments, req.MaxSuggestions)
	if err != nil {
		uc.logger.Error("GetSuggestions: failed to build suggestions: %v", err)
		return nil, fmt.Errorf("%w: failed to build suggestions: %v", ErrInternal, err)
	}

	result := make([]string, len(times))
	for i, t := range times {
		result[i] = t.String()
	}

	uc.logger.Info("GetSuggestions: %d times for resource=%d date=%s",
		len(result), resource.ID, req.Date.Format(domain.DateFormat))

	return &Response{
		ResourceID: resource.ID,
		Date:       req.Date,
		Times:      result,
	}, nil
}
