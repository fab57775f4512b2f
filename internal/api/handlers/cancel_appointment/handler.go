package cancel_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kly4ev/SDA-BookingService/internal/api/handlers"
	"github.com/kly4ev/SDA-BookingService/internal/api/middleware"
	"github.com/kly4ev/SDA-BookingService/internal/service/appointments"
	"github.com/kly4ev/SDA-BookingService/internal/service/appointments/models"
)

const (
	msgInvalidAppointmentID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgAppointmentNotFound  = "бронирование не найдено"
	msgAccessDenied         = "доступ к чужому бронированию запрещён"
	msgCannotCancel         = "бронирование не может быть отменено"
	msgCancelled            = "бронирование отменено"
	msgUnauthorized         = "требуется аутентификация"
)

// cancelRequest HTTP модель запроса на отмену бронирования
type cancelRequest struct {
	CancellationReason string `json:"cancellationReason,omitempty"`
}

// cancelResponse HTTP модель ответа об отмене
type cancelResponse struct {
	Message string `json:"message"`
}

// Handler обработчик отмены бронирования клиентом
// PATCH /api/v1/appointments/{appointmentId}/cancel
type Handler struct {
	service AppointmentsService
	logger  Logger
}

// NewHandler создает новый экземпляр обработчика
func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle обрабатывает запрос на отмену бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetClientID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil || appointmentID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req cancelRequest
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	err = h.service.Cancel(r.Context(), appointmentID, &models.CancelAppointmentRequest{
		ClientID:           clientID,
		CancellationReason: req.CancellationReason,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)
		case errors.Is(err, appointments.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, appointments.ErrCannotCancel):
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)
		default:
			h.logger.Error("PATCH /api/v1/appointments/%d/cancel - Internal error: client=%d, error=%v", appointmentID, clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /api/v1/appointments/%d/cancel - Cancelled: client=%d", appointmentID, clientID)
	handlers.RespondJSON(w, http.StatusOK, &cancelResponse{Message: msgCancelled})
}
