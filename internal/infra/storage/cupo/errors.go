package cupo

import "errors"

var (
	// ErrCupoNotFound возвращается, когда cupo не найден
	ErrCupoNotFound = errors.New("cupo.repository: cupo not found")

	// ErrCupoExists возвращается при попытке создать дубликат cupo для (agenda, fecha)
	ErrCupoExists = errors.New("cupo.repository: cupo already exists for agenda and date")

	// ErrLockTimeout возвращается, когда блокировка (agenda, fecha) не получена за lock_timeout
	ErrLockTimeout = errors.New("cupo.repository: lock wait timeout")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("cupo.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("cupo.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("cupo.repository: failed to scan row")
)
