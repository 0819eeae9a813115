package update_turno

import (
	"context"

	updateTurno "github.com/lab-agenda/turnero-service/internal/usecase/update_turno"
)

type UpdateTurnoUseCase interface {
	Execute(ctx context.Context, req *updateTurno.Request) (*updateTurno.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
