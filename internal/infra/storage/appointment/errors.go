package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда бронирование не найдено
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrSlotConflict возвращается при нарушении уникальности слота
	// (два активных бронирования на одно время ресурса)
	ErrSlotConflict = errors.New("appointment.repository: slot conflict")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
