package create_feriado

import (
	"context"

	"github.com/lab-agenda/turnero-service/internal/service/feriados/models"
)

type FeriadoService interface {
	Create(ctx context.Context, req *models.CreateFeriadoRequest) (*models.FeriadoResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
