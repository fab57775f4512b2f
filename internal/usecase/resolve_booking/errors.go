package resolve_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном или неполном запросе
	// Запрос не повторяется - клиент должен отправить его заново
	ErrInvalidInput = errors.New("resolve_booking: invalid input data")

	// ErrResourceNotFound возвращается, когда запрошенный ресурс не найден
	ErrResourceNotFound = errors.New("resolve_booking: resource not found")

	// ErrInternal возвращается при ошибках хранилища и прочих внутренних сбоях
	ErrInternal = errors.New("resolve_booking: internal error")
)
