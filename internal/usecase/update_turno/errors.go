package update_turno

import "errors"

var (
	// ErrTurnoNotFound возвращается, когда turno не найден
	ErrTurnoNotFound = errors.New("update_turno: turno not found")

	// ErrAgendaNotFound возвращается, когда целевая агенда не найдена
	ErrAgendaNotFound = errors.New("update_turno: agenda not found")

	// ErrFeriado возвращается при переносе на праздничный день
	ErrFeriado = errors.New("update_turno: fecha is a feriado")

	// ErrSinCupo возвращается, когда целевая пара (agenda, fecha) не имеет емкости
	ErrSinCupo = errors.New("update_turno: no capacity configured for fecha")

	// ErrFechaCompleta возвращается, когда целевая пара (agenda, fecha) заполнена
	ErrFechaCompleta = errors.New("update_turno: fecha is full")

	// ErrLockTimeout возвращается при истечении ожидания блокировки целевой пары
	ErrLockTimeout = errors.New("update_turno: lock wait timeout")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_turno: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_turno: internal error")
)
