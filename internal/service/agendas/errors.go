package agendas

import "errors"

var (
	// ErrAgendaNotFound возвращается, когда агенда не найдена
	ErrAgendaNotFound = errors.New("agenda not found")

	// ErrAgendaExists возвращается при попытке создать агенду с занятым slug
	ErrAgendaExists = errors.New("agenda already exists")

	// ErrAgendaInUse возвращается при удалении агенды с существующими turnos
	ErrAgendaInUse = errors.New("agenda has existing turnos")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
