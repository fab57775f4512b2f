package parserservice

import "errors"

var (
	// ErrNoIntent возвращается, когда из текста не удалось извлечь намерение бронирования
	ErrNoIntent = errors.New("parserservice client: no booking intent extracted")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("parserservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("parserservice client: invalid response")
)
