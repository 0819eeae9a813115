package get_weekly

import (
	"context"

	"github.com/lab-agenda/turnero-service/internal/service/agendas/models"
)

type AgendaService interface {
	ListWeekly(ctx context.Context, agendaID int64) (*models.WeeklyListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
