package get_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kly4ev/SDA-BookingService/internal/api/handlers"
	"github.com/kly4ev/SDA-BookingService/internal/api/middleware"
	"github.com/kly4ev/SDA-BookingService/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "некорректный ID бронирования"
	msgAppointmentNotFound  = "бронирование не найдено"
	msgAccessDenied         = "доступ к чужому бронированию запрещён"
	msgUnauthorized         = "требуется аутентификация"
)

// Handler обработчик получения бронирования по ID
// GET /api/v1/appointments/{appointmentId}
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

// Handle обрабатывает запрос бронирования по ID
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

	appt, err := h.service.GetByID(r.Context(), appointmentID, clientID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)
		case errors.Is(err, appointments.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("GET /api/v1/appointments/%d - Internal error: client=%d, error=%v", appointmentID, clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toPayload(appt))
}
