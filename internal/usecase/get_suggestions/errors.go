package get_suggestions

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_suggestions: invalid input data")

	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("get_suggestions: resource not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_suggestions: internal error")
)
