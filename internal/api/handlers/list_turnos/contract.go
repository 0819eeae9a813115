package list_turnos

import (
	"context"

	"github.com/lab-agenda/turnero-service/internal/service/turnos/models"
)

type TurnoService interface {
	List(ctx context.Context, req *models.ListTurnosRequest) (*models.TurnoListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
