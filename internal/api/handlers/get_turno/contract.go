package get_turno

import (
	"context"

	"github.com/lab-agenda/turnero-service/internal/service/turnos/models"
)

type TurnoService interface {
	GetByID(ctx context.Context, id int64) (*models.TurnoResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
