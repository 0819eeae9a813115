package agenda

import "errors"

var (
	// ErrAgendaNotFound возвращается, когда агенда не найдена
	ErrAgendaNotFound = errors.New("agenda.repository: agenda not found")

	// ErrAgendaExists возвращается при попытке создать агенду с занятым slug
	ErrAgendaExists = errors.New("agenda.repository: agenda with this slug already exists")

	// ErrAgendaInUse возвращается при попытке удалить агенду, на которую ссылаются turnos
	ErrAgendaInUse = errors.New("agenda.repository: agenda has turnos and cannot be deleted")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("agenda.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("agenda.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("agenda.repository: failed to scan row")
)
