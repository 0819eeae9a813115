package create_turno

import "errors"

var (
	// ErrAgendaNotFound возвращается, когда агенда не найдена
	ErrAgendaNotFound = errors.New("create_turno: agenda not found")

	// ErrFeriado возвращается при попытке бронирования на праздничный день.
	// Текст ошибки дополняется описанием feriado.
	ErrFeriado = errors.New("create_turno: fecha is a feriado")

	// ErrSinCupo возвращается, когда ни cupo, ни недельное расписание
	// не дают емкости > 0 на дату
	ErrSinCupo = errors.New("create_turno: no capacity configured for fecha")

	// ErrFechaCompleta возвращается, когда все слоты на дату заняты
	ErrFechaCompleta = errors.New("create_turno: fecha is full")

	// ErrLockTimeout возвращается, когда блокировка (agenda, fecha) не получена
	// за отведенное время. Транзиентная ошибка: повтор безопасен,
	// в отличие от ErrFechaCompleta.
	ErrLockTimeout = errors.New("create_turno: lock wait timeout")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_turno: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_turno: internal error")
)
