package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда бронирование не найдено
	ErrAppointmentNotFound = errors.New("appointments.service: appointment not found")

	// ErrAccessDenied возвращается, когда клиент обращается к чужому бронированию
	ErrAccessDenied = errors.New("appointments.service: access denied")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("appointments.service: appointment cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("appointments.service: invalid input")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments.service: internal error")
)
