package medico

import "errors"

var (
	// ErrMedicoNotFound возвращается, когда медик не найден
	ErrMedicoNotFound = errors.New("medico.repository: medico not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("medico.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("medico.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("medico.repository: failed to scan row")
)
