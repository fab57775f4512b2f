package transactor

import "errors"

var (
	// ErrSlotTaken возвращается, когда на момент коммита слот уже занят
	// (в том числе при проигрыше гонки конкурирующему коммиту)
	ErrSlotTaken = errors.New("transactor: slot is taken")

	// ErrOutsideOperatingHours возвращается, когда окно выходит за рабочие часы салона
	ErrOutsideOperatingHours = errors.New("transactor: outside operating hours")

	// ErrInvalidWindow возвращается при некорректном времени начала или длительности
	ErrInvalidWindow = errors.New("transactor: invalid time window")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("transactor: internal error")
)
