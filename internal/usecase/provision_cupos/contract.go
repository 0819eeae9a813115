package provision_cupos

import (
	"context"
	"time"

	"github.com/lab-agenda/turnero-service/internal/domain"
)

// CupoRepository интерфейс репозитория cupos
type CupoRepository interface {
	GetByAgendaAndFecha(ctx context.Context, agendaID int64, fecha time.Time) (*domain.Cupo, error)
	Create(ctx context.Context, c *domain.Cupo) (*domain.Cupo, error)
	UpdateCantidad(ctx context.Context, id int64, cantidad int) error
}

// AgendaRepository интерфейс репозитория агенд
type AgendaRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Agenda, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
