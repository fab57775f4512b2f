package resolve_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/kly4ev/SDA-BookingService/internal/api/handlers"
	"github.com/kly4ev/SDA-BookingService/internal/api/middleware"
	"github.com/kly4ev/SDA-BookingService/internal/domain"
	"github.com/kly4ev/SDA-BookingService/internal/integrations/parserservice"
	usecase "github.com/kly4ev/SDA-BookingService/internal/usecase/resolve_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingFields      = "укажите resourceId, date и startTime либо текст запроса"
	msgNoIntent           = "не удалось распознать запрос на бронирование"
	msgResourceNotFound   = "ресурс не найден"
	msgUnauthorized       = "требуется аутентификация"
)

// Handler обработчик разрешения бронирования
// POST /api/v1/bookings/resolve
type Handler struct {
	useCase ResolveBookingUseCase
	parser  TextParser
	logger  Logger
}

// NewHandler создает новый экземпляр обработчика
func NewHandler(useCase ResolveBookingUseCase, parser TextParser, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		parser:  parser,
		logger:  logger,
	}
}

// Handle обрабатывает запрос на разрешение бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetClientID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req resolveBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /api/v1/bookings/resolve - Invalid request body: client=%d, error=%v", clientID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if !req.isStructured() {
		if req.Text == "" {
			handlers.RespondBadRequest(w, msgMissingFields)
			return
		}
		if err := h.parseText(r, &req, clientID); err != nil {
			if errors.Is(err, parserservice.ErrNoIntent) {
				handlers.RespondError(w, http.StatusUnprocessableEntity, msgNoIntent)
				return
			}
			h.logger.Error("POST /api/v1/bookings/resolve - Parser error: client=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
			return
		}
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), toUseCaseRequest(&req, clientID, date))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, usecase.ErrResourceNotFound):
			handlers.RespondNotFound(w, msgResourceNotFound)
		default:
			h.logger.Error("POST /api/v1/bookings/resolve - Internal error: client=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /api/v1/bookings/resolve - Resolved: client=%d, outcome=%s", clientID, resp.Outcome)
	handlers.RespondJSON(w, http.StatusOK, toPayload(resp, domain.DateFormat))
}

// parseText разбирает свободный текст через парсер и заполняет структурированные поля
func (h *Handler) parseText(r *http.Request, req *resolveBookingRequest, clientID int64) error {
	parsed, err := h.parser.Parse(r.Context(), req.Text, time.Now())
	if err != nil {
		return err
	}

	h.logger.Info("POST /api/v1/bookings/resolve - Parsed text: client=%d, resource=%d, date=%s, time=%s",
		clientID, parsed.ResourceID, parsed.Date, parsed.StartTime)

	req.ResourceID = parsed.ResourceID
	req.Date = parsed.Date
	req.StartTime = parsed.StartTime
	if req.Preferences == nil {
		req.Preferences = parsed.Preferences
	}

	return nil
}
