package upsert_weekly

import (
	"context"

	"github.com/lab-agenda/turnero-service/internal/service/agendas/models"
)

type AgendaService interface {
	UpsertWeekly(ctx context.Context, req *models.UpsertWeeklyRequest) (*models.WeeklyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
