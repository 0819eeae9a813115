package list_agendas

import (
	"context"

	"github.com/lab-agenda/turnero-service/internal/service/agendas/models"
)

type AgendaService interface {
	List(ctx context.Context) (*models.AgendaListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
