package get_suggestions

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/kly4ev/SDA-BookingService/internal/api/handlers"
	"github.com/kly4ev/SDA-BookingService/internal/domain"
	usecase "github.com/kly4ev/SDA-BookingService/internal/usecase/get_suggestions"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidMax        = "некорректное значение параметра max"
	msgResourceNotFound  = "ресурс не найден"
)

// suggestionsPayload HTTP модель ответа с доступными временами начала
type suggestionsPayload struct {
	ResourceID int64    `json:"resourceId"`
	Date       string   `json:"date"`
	Times      []string `json:"times"`
}

// Handler обработчик предпросмотра доступных времён начала
// GET /api/v1/resources/{resourceId}/suggestions?date=YYYY-MM-DD&max=N
type Handler struct {
	useCase GetSuggestionsUseCase
	logger  Logger
}

// NewHandler создает новый экземпляр обработчика
func NewHandler(useCase GetSuggestionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle обрабатывает запрос доступных времён начала
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	resourceID, err := strconv.ParseInt(vars["resourceId"], 10, 64)
	if err != nil || resourceID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	maxSuggestions := 0
	if raw := r.URL.Query().Get("max"); raw != "" {
		maxSuggestions, err = strconv.Atoi(raw)
		if err != nil || maxSuggestions < 0 {
			handlers.RespondBadRequest(w, msgInvalidMax)
			return
		}
	}

	resp, err := h.useCase.Execute(r.Context(), &usecase.Request{
		ResourceID:     resourceID,
		Date:           date,
		MaxSuggestions: maxSuggestions,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, usecase.ErrResourceNotFound):
			handlers.RespondNotFound(w, msgResourceNotFound)
		default:
			h.logger.Error("GET /api/v1/resources/%d/suggestions - Internal error: %v", resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	times := resp.Times
	if times == nil {
		times = []string{}
	}

	handlers.RespondJSON(w, http.StatusOK, &suggestionsPayload{
		ResourceID: resp.ResourceID,
		Date:       resp.Date.Format(domain.DateFormat),
		Times:      times,
	})
}
