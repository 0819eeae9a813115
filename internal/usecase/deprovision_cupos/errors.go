package deprovision_cupos

import "errors"

var (
	// ErrAgendaNotFound возвращается, когда агенда не найдена
	ErrAgendaNotFound = errors.New("deprovision_cupos: agenda not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("deprovision_cupos: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("deprovision_cupos: internal error")
)
