package feriados

import "errors"

var (
	// ErrFeriadoNotFound возвращается, когда feriado не найден
	ErrFeriadoNotFound = errors.New("feriado not found")

	// ErrFeriadoExists возвращается при попытке создать дубликат feriado
	ErrFeriadoExists = errors.New("feriado already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
