package transactor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kly4ev/SDA-BookingService/internal/domain"
	apptRepo "github.com/kly4ev/SDA-BookingService/internal/infra/storage/appointment"
	"github.com/kly4ev/SDA-BookingService/internal/service/availability"
	"github.com/kly4ev/SDA-BookingService/pkg/types"
)

// Service выполняет атомарный коммит бронирования
//
// Единственный компонент, которому разрешено создавать бронирования.
// Проверка доступности выполняется повторно внутри той же сериализуемой
// транзакции, что и запись: предварительная проверка оркестратора носит
// только справочный характер, источником истины о том, кто занял слот,
// служит изоляция транзакции в БД.
type Service struct {
	apptRepo  AppointmentRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр транзактора
func NewService(apptRepo AppointmentRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		apptRepo:  apptRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Commit резервирует слот: повторяет проверку доступности и создаёт
// подтверждённое бронирование одной атомарной операцией.
//
// При успехе создаётся ровно одна строка со статусом confirmed и снимком цены.
// При конфликте (включая проигранную гонку) возвращается ErrSlotTaken,
// строка не создаётся - существующие бронирования никогда не перезаписываются.
func (s *Service) Commit(
	ctx context.Context,
	resource *domain.Resource,
	clientID int64,
	date time.Time,
	start types.TimeString,
) (*domain.Appointment, error) {
	window, err := domain.NewTimeWindow(start, resource.DurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}

	schedule := resource.Hours.For(date)

	var result *domain.Appointment

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Повторное чтение препятствий под блокировкой (FOR UPDATE внутри транзакции)
		existing, err := s.apptRepo.GetForDate(txCtx, resource.ID, date)
		if err != nil {
			s.logger.Error("Commit: failed to get appointments for resource=%d date=%s: %v",
				resource.ID, date.Format(domain.DateFormat), err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		decision := availability.Check(schedule, window, existing)
		if !decision.Available {
			switch decision.Reason {
			case availability.ReasonOutsideOperatingHours:
				return ErrOutsideOperatingHours
			default:
				s.logger.Warn("Commit: slot %s-%s taken for resource=%d date=%s",
					window.Start, window.End, resource.ID, date.Format(domain.DateFormat))
				return ErrSlotTaken
			}
		}

		appt := &domain.Appointment{
			ClientID:        clientID,
			ResourceID:      resource.ID,
			SalonID:         resource.SalonID,
			ServiceID:       resource.ServiceID,
			MasterID:        resource.MasterID,
			Date:            date,
			StartTime:       window.Start,
			DurationMinutes: resource.DurationMinutes,
			Status:          domain.StatusConfirmed,
			ServiceName:     resource.ServiceName,
			PriceSnapshot:   resource.Price,
		}

		created, err := s.apptRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, apptRepo.ErrSlotConflict) {
				// Уникальный индекс сработал раньше проверки - гонка проиграна
				return ErrSlotTaken
			}
			s.logger.Error("Commit: failed to create appointment for resource=%d: %v", resource.ID, err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Commit: appointment id=%d created for resource=%d date=%s start=%s",
		result.ID, resource.ID, date.Format(domain.DateFormat), window.Start)

	return result, nil
}
