package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/kly4ev/SDA-BookingService/internal/domain"
	apptRepo "github.com/kly4ev/SDA-BookingService/internal/infra/storage/appointment"
	"github.com/kly4ev/SDA-BookingService/internal/service/appointments/models"
)

// Service сервис для работы с существующими бронированиями
// Управление жизненным циклом после коммита: просмотр, история, отмена клиентом.
// Отмена со стороны салона приходит из сервиса управления салонами, не отсюда.
type Service struct {
	apptRepo AppointmentRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(apptRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		apptRepo: apptRepo,
		logger:   logger,
	}
}

// GetByID получает бронирование по ID
// Клиент может видеть только собственные бронирования
func (s *Service) GetByID(ctx context.Context, id int64, clientID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for client=%d", id, clientID)

	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if appt.ClientID != clientID {
		s.logger.Warn("GetByID: access denied for client=%d to appointment id=%d", clientID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainAppointment(appt), nil
}

// GetClientAppointments получает историю бронирований клиента
// Опционально фильтрует по статусу
func (s *Service) GetClientAppointments(ctx context.Context, req *models.GetClientAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetClientAppointments: fetching appointments for client=%d, status=%v", req.ClientID, req.Status)

	var domainStatus *domain.AppointmentStatus
	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientAppointments: invalid status=%s for client=%d", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	appts, err := s.apptRepo.GetByClientID(ctx, req.ClientID, domainStatus)
	if err != nil {
		s.logger.Error("GetClientAppointments: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientAppointments: fetched %d appointments for client=%d", len(appts), req.ClientID)
	return models.FromDomainAppointmentList(appts), nil
}

// Cancel отменяет бронирование
// Клиент может отменить только собственное подтверждённое бронирование.
// Отменённое бронирование перестаёт занимать слот.
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by client=%d", appointmentID, req.ClientID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	appt, err := s.apptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if appt.ClientID != req.ClientID {
		s.logger.Warn("Cancel: access denied for client=%d to appointment id=%d", req.ClientID, appointmentID)
		return ErrAccessDenied
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", appointmentID, appt.Status)
		return ErrCannotCancel
	}

	if err := s.apptRepo.Cancel(ctx, appointmentID, domain.StatusCancelledByClient, req.CancellationReason); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: appointment id=%d cancelled by client=%d", appointmentID, req.ClientID)
	return nil
}
