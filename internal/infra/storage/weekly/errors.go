package weekly

import "errors"

var (
	// ErrAvailabilityNotFound возвращается, когда запись недельного расписания не найдена
	ErrAvailabilityNotFound = errors.New("weekly.repository: weekly availability not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("weekly.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("weekly.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("weekly.repository: failed to scan row")
)
