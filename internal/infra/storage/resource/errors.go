package resource

import "errors"

var (
	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("resource.repository: resource not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("resource.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("resource.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("resource.repository: failed to scan row")

	// ErrInvalidSchedule возвращается, когда рабочие часы салона в БД некорректны
	ErrInvalidSchedule = errors.New("resource.repository: invalid salon schedule")
)
