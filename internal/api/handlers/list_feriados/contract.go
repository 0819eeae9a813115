package list_feriados

import (
	"context"

	"github.com/lab-agenda/turnero-service/internal/service/feriados/models"
)

type FeriadoService interface {
	List(ctx context.Context) (*models.FeriadoListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
