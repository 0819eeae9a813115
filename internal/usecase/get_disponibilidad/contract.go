package get_disponibilidad

import (
	"context"
	"time"

	"github.com/lab-agenda/turnero-service/internal/domain"
)

// CapacityResolver интерфейс резолвера емкости
type CapacityResolver interface {
	Disponibilidad(ctx context.Context, agendaID int64, fecha time.Time) (*domain.Disponibilidad, error)
}

// AgendaRepository интерфейс репозитория агенд
type AgendaRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Agenda, error)
}

// FeriadoRepository интерфейс репозитория feriados
type FeriadoRepository interface {
	GetByFecha(ctx context.Context, fecha time.Time) (*domain.Feriado, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
