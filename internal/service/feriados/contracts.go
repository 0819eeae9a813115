package feriados

import (
	"context"
	"time"

	"github.com/lab-agenda/turnero-service/internal/domain"
)

// FeriadoRepository интерфейс репозитория feriados
type FeriadoRepository interface {
	GetByFecha(ctx context.Context, fecha time.Time) (*domain.Feriado, error)
	List(ctx context.Context) ([]*domain.Feriado, error)
	Create(ctx context.Context, f *domain.Feriado) (*domain.Feriado, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
