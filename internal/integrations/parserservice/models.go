package parserservice

// ParseRequest запрос на разбор свободного текста клиента
type ParseRequest struct {
	Text          string `json:"text"`
	ReferenceDate string `json:"referenceDate"` // "2025-10-15", контекст "сегодня" для разбора
}

// ParsedBooking структурированный запрос бронирования, извлечённый из текста
type ParsedBooking struct {
	ResourceID  int64   `json:"resourceId"`
	Date        string  `json:"date"`      // "2025-10-15"
	StartTime   string  `json:"startTime"` // "10:00"
	Preferences *string `json:"preferences,omitempty"`
}

// ErrorResponse модель ошибки от ParserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
