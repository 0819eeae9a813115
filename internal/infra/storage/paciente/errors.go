package paciente

import "errors"

var (
	// ErrPacienteNotFound возвращается, когда пациент не найден
	ErrPacienteNotFound = errors.New("paciente.repository: paciente not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("paciente.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("paciente.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("paciente.repository: failed to scan row")
)
