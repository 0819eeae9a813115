package turnos

import "errors"

var (
	// ErrTurnoNotFound возвращается, когда turno не найден
	ErrTurnoNotFound = errors.New("turno not found")

	// ErrAgendaNotFound возвращается, когда агенда не найдена
	ErrAgendaNotFound = errors.New("agenda not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
