package update_turno

import (
	"context"
	"time"

	"github.com/lab-agenda/turnero-service/internal/domain"
)

// TurnoRepository интерфейс репозитория turnos
type TurnoRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Turno, error)
	Update(ctx context.Context, t *domain.Turno) error
}

// CupoRepository интерфейс репозитория cupos
type CupoRepository interface {
	LockAgendaFecha(ctx context.Context, agendaID int64, fecha time.Time) error
}

// FeriadoRepository интерфейс репозитория feriados
type FeriadoRepository interface {
	GetByFecha(ctx context.Context, fecha time.Time) (*domain.Feriado, error)
}

// AgendaRepository интерфейс репозитория агенд
type AgendaRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Agenda, error)
}

// MedicoRepository интерфейс справочника медиков
type MedicoRepository interface {
	FindByNombre(ctx context.Context, nombre string) (*domain.Medico, error)
}

// CapacityResolver интерфейс резолвера емкости
type CapacityResolver interface {
	ResolveCapacity(ctx context.Context, agendaID int64, fecha time.Time) (int, error)
	CountUsados(ctx context.Context, agendaID int64, fecha time.Time) (int, error)
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
