package feriado

import "errors"

var (
	// ErrFeriadoNotFound возвращается, когда feriado не найден
	ErrFeriadoNotFound = errors.New("feriado.repository: feriado not found")

	// ErrFeriadoExists возвращается при попытке создать дубликат feriado на дату
	ErrFeriadoExists = errors.New("feriado.repository: feriado already exists for date")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("feriado.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("feriado.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("feriado.repository: failed to scan row")
)
