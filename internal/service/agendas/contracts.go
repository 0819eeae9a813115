package agendas

import (
	"context"

	"github.com/lab-agenda/turnero-service/internal/domain"
)

// AgendaRepository интерфейс репозитория агенд
type AgendaRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Agenda, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Agenda, error)
	List(ctx context.Context) ([]*domain.Agenda, error)
	Create(ctx context.Context, a *domain.Agenda) (*domain.Agenda, error)
	Delete(ctx context.Context, id int64) error
}

// WeeklyRepository интерфейс репозитория недельного расписания
type WeeklyRepository interface {
	ListByAgenda(ctx context.Context, agendaID int64) ([]*domain.WeeklyAvailability, error)
	Upsert(ctx context.Context, w *domain.WeeklyAvailability) (*domain.WeeklyAvailability, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
