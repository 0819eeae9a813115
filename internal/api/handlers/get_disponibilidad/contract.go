package get_disponibilidad

import (
	"context"

	getDisponibilidad "github.com/lab-agenda/turnero-service/internal/usecase/get_disponibilidad"
)

type GetDisponibilidadUseCase interface {
	Execute(ctx context.Context, req *getDisponibilidad.Request) (*getDisponibilidad.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
