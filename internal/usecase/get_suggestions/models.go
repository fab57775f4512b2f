package get_suggestions

import "time"

// Request модель запроса доступных времён начала
type Request struct {
	ResourceID     int64     // ID ресурса
	Date           time.Time // Дата (без времени)
	MaxSuggestions int       // Максимум вариантов; 0 = значение по умолчанию
}

// Response модель ответа с доступными временами начала
// Ответ справочный: ничего не резервирует и гарантий не даёт
type Response struct {
	ResourceID int64
	Date       time.Time
	Times      []string // Времена начала "HH:MM" по возрастанию
}
