package turnos

import (
	"context"
	"time"

	"github.com/lab-agenda/turnero-service/internal/domain"
)

// TurnoRepository интерфейс репозитория turnos
type TurnoRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Turno, error)
	ListByFilter(ctx context.Context, filter domain.TurnosFilter) ([]*domain.Turno, error)
	Delete(ctx context.Context, id int64) error
}

// PacienteRepository интерфейс репозитория пациентов
type PacienteRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Paciente, error)
}

// MedicoRepository интерфейс репозитория врачей
type MedicoRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Medico, error)
}

// AgendaRepository интерфейс репозитория агенд
type AgendaRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Agenda, error)
}

// CapacityResolver интерфейс резолвера емкости
type CapacityResolver interface {
	Disponibilidad(ctx context.Context, agendaID int64, fecha time.Time) (*domain.Disponibilidad, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
