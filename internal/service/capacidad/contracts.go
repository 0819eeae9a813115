package capacidad

import (
	"context"
	"time"

	"github.com/lab-agenda/turnero-service/internal/domain"
)

// CupoRepository интерфейс репозитория cupos
type CupoRepository interface {
	GetByAgendaAndFecha(ctx context.Context, agendaID int64, fecha time.Time) (*domain.Cupo, error)
}

// WeeklyRepository интерфейс репозитория недельного расписания
type WeeklyRepository interface {
	GetByAgendaAndWeekday(ctx context.Context, agendaID int64, weekday time.Weekday) (*domain.WeeklyAvailability, error)
}

// FeriadoRepository интерфейс репозитория feriados
type FeriadoRepository interface {
	GetByFecha(ctx context.Context, fecha time.Time) (*domain.Feriado, error)
}

// TurnoRepository интерфейс репозитория turnos
type TurnoRepository interface {
	CountByAgendaAndFecha(ctx context.Context, agendaID int64, fecha time.Time) (int, error)
}
