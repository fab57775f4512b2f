package get_client_appointments

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
	msgInvalidClientID = "некорректный ID клиента"
	msgAccessDenied    = "доступ к чужим бронированиям запрещён"
	msgUnauthorized    = "требуется аутентификация"
)

// Handler обработчик истории бронирований клиента
// GET /api/v1/clients/{clientId}/appointments?status=confirmed
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

// Handle обрабатывает запрос истории бронирований
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	authedClientID, ok := middleware.GetClientID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	clientID, err := strconv.ParseInt(vars["clientId"], 10, 64)
	if err != nil || clientID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	if clientID != authedClientID {
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	req := &models.GetClientAppointmentsRequest{ClientID: clientID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	list, err := h.service.GetClientAppointments(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("GET /api/v1/clients/%d/appointments - Internal error: %v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toListPayload(list))
}
