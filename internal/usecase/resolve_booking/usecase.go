package resolve_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kly4ev/SDA-BookingService/internal/domain"
	resourceRepo "github.com/kly4ev/SDA-BookingService/internal/infra/storage/resource"
	"github.com/kly4ev/SDA-BookingService/internal/integrations/notifyservice"
	"github.com/kly4ev/SDA-BookingService/internal/service/availability"
	"github.com/kly4ev/SDA-BookingService/internal/service/transactor"
)

// notifyTimeout таймаут на fire-and-forget уведомление
const notifyTimeout = 3 * time.Second

// UseCase use case разрешения бронирования - публичная точка входа движка
//
// Состояния одного запроса (терминальный исход на первом выходе):
// валидация → загрузка ресурса и бронирований → проверка доступности →
// коммит или подбор альтернатив → типизированный результат.
// Проигранная гонка на коммите даёт ровно одну повторную проверку
// со свежими данными, после чего - альтернативы.
type UseCase struct {
	resourceRepo ResourceRepository
	apptRepo     AppointmentRepository
	transactor   BookingTransactor
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	resourceRepo ResourceRepository,
	apptRepo AppointmentRepository,
	bookingTransactor BookingTransactor,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		resourceRepo: resourceRepo,
		apptRepo:     apptRepo,
		transactor:   bookingTransactor,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет разрешение бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ResolveBooking: client=%d, resource=%d, date=%s, time=%s",
		req.ClientID, req.ResourceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных - до любого обращения к хранилищу
	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("ResolveBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем ресурс с расписанием салона
	resource, err := uc.resourceRepo.GetByID(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			uc.logger.Warn("ResolveBooking: resource id=%d not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("ResolveBooking: failed to get resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}

	// 3. Строим запрошенное окно из времени начала и длительности услуги
	window, err := domain.NewTimeWindow(req.StartTime, resource.DurationMinutes)
	if err != nil {
		uc.logger.Warn("ResolveBooking: invalid window: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	schedule := resource.Hours.For(req.Date)

	// 4. Предварительная проверка доступности
	// Справочная: гарантию даёт только повторная проверка внутри коммита
	appointments, err := uc.loadAppointments(ctx, resource.ID, req.Date)
	if err != nil {
		return nil, err
	}

	decision := availability.Check(schedule, window, appointments)

	if !decision.Available {
		if decision.Reason == availability.ReasonOutsideOperatingHours {
			// Вне рабочих часов альтернативы не имеют смысла
			uc.logger.Info("ResolveBooking: rejected, outside operating hours: resource=%d date=%s window=%s-%s",
				resource.ID, req.Date.Format(domain.DateFormat), window.Start, window.End)
			return rejectedResponse(RejectReasonOutsideOperatingHours), nil
		}

		uc.logger.Info("ResolveBooking: slot %s taken for resource=%d, building suggestions",
			req.StartTime, resource.ID)
		return uc.buildSuggestions(schedule, resource.DurationMinutes, appointments)
	}

	// 5. Коммит. Проигранная гонка даёт одну повторную проверку со свежими данными.
	for attempt := 0; attempt < 2; attempt++ {
		appt, err := uc.transactor.Commit(ctx, resource, req.ClientID, req.Date, req.StartTime)
		if err == nil {
			uc.notifyBooked(appt)
			uc.logger.Info("ResolveBooking: booked appointment id=%d for client=%d", appt.ID, req.ClientID)
			return bookedResponse(appt), nil
		}

		if errors.Is(err, transactor.ErrOutsideOperatingHours) {
			return rejectedResponse(RejectReasonOutsideOperatingHours), nil
		}

		if !errors.Is(err, transactor.ErrSlotTaken) {
			uc.logger.Error("ResolveBooking: commit failed for resource=%d: %v", resource.ID, err)
			return nil, fmt.Errorf("%w: commit failed: %v", ErrInternal, err)
		}

		// Гонка проиграна - перечитываем бронирования
		appointments, err = uc.loadAppointments(ctx, resource.ID, req.Date)
		if err != nil {
			return nil, err
		}

		if attempt == 0 && availability.Check(schedule, window, appointments).Available {
			// Победитель гонки занял другой слот (или отменился) - пробуем ещё раз
			uc.logger.Info("ResolveBooking: lost race but slot %s still available, retrying commit", req.StartTime)
			continue
		}

		break
	}

	uc.logger.Info("ResolveBooking: slot %s lost to concurrent commit for resource=%d, building suggestions",
		req.StartTime, resource.ID)
	return uc.buildSuggestions(schedule, resource.DurationMinutes, appointments)
}

func (uc *UseCase) loadAppointments(ctx context.Context, resourceID int64, date time.Time) ([]*domain.Appointment, error) {
	appointments, err := uc.apptRepo.GetForDate(ctx, resourceID, date)
	if err != nil {
		uc.logger.Error("ResolveBooking: failed to get appointments for resource=%d: %v", resourceID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}
	return appointments, nil
}

// buildSuggestions подбирает альтернативные времена начала
// Пустой список - тоже валидный ответ: "слот занят, альтернатив на этот день нет"
func (uc *UseCase) buildSuggestions(
	schedule domain.DaySchedule,
	durationMinutes int,
	appointments []*domain.Appointment,
) (*Response, error) {
	times, err := availability.Suggest(schedule, durationMinutes, appointments, domain.DefaultMaxSuggestions)
	if err != nil {
		uc.logger.Error("ResolveBooking: failed to build suggestions: %v", err)
		return nil, fmt.Errorf("%w: failed to build suggestions: %v", ErrInternal, err)
	}

	return suggestionsResponse(times), nil
}

// notifyBooked отправляет уведомление о бронировании в фоне
// Бронирование уже зафиксировано - сбой доставки на результат не влияет
func (uc *UseCase) notifyBooked(appt *domain.Appointment) {
	event := &notifyservice.BookingConfirmedEvent{
		AppointmentID: appt.ID,
		ClientID:      appt.ClientID,
		SalonID:       appt.SalonID,
		ServiceName:   appt.ServiceName,
		Date:          appt.Date.Format(domain.DateFormat),
		StartTime:     appt.StartTime.String(),
		Price:         appt.PriceSnapshot,
	}

	logger := uc.logger
	notifier := uc.notifier

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := notifier.NotifyBookingConfirmed(ctx, event); err != nil {
			logger.Warn("ResolveBooking: failed to notify about appointment id=%d: %v", event.AppointmentID, err)
		}
	}()
}
