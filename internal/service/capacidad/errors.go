package capacidad

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках резолвера
	ErrInternal = errors.New("capacidad: internal error")
)
