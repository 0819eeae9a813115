package get_disponibilidad

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lab-agenda/turnero-service/internal/domain"
	agendaRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/agenda"
	feriadoRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/feriado"
)

type noopLogger struct{}

func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fakeResolver struct {
	capacidad int
	usados    map[string]int
}

func (r *fakeResolver) Disponibilidad(_ context.Context, agendaID int64, fecha time.Time) (*domain.Disponibilidad, error) {
	return &domain.Disponibilidad{
		AgendaID:  agendaID,
		Fecha:     fecha,
		Capacidad: r.capacidad,
		Usados:    r.usados[fecha.Format(domain.DateFormat)],
	}, nil
}

type fakeAgendaRepo struct{ missing bool }

func (f *fakeAgendaRepo) GetByID(_ context.Context, id int64) (*domain.Agenda, error) {
	if f.missing {
		return nil, agendaRepo.ErrAgendaNotFound
	}
	return &domain.Agenda{ID: id}, nil
}

type fakeFeriadoRepo struct{ feriados map[string]*domain.Feriado }

func (f *fakeFeriadoRepo) GetByFecha(_ context.Context, fecha time.Time) (*domain.Feriado, error) {
	if fer, ok := f.feriados[fecha.Format(domain.DateFormat)]; ok {
		return fer, nil
	}
	return nil, feriadoRepo.ErrFeriadoNotFound
}

var (
	lunes   = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	domingo = time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
)

func newUseCase(r *fakeResolver, feriados map[string]*domain.Feriado) *UseCase {
	return NewUseCase(r, &fakeAgendaRepo{}, &fakeFeriadoRepo{feriados: feriados}, noopLogger{})
}

func TestExecute_WeekdaysOnly(t *testing.T) {
	uc := newUseCase(&fakeResolver{capacidad: 20}, nil)

	resp, err := uc.Execute(context.Background(), &Request{AgendaID: 1, Desde: lunes, Hasta: domingo})
	require.NoError(t, err)

	// Неделя lunes..domingo дает ровно 5 рабочих дней
	require.Len(t, resp.Days, 5)
	for _, day := range resp.Days {
		assert.False(t, domain.IsWeekend(day.Fecha))
		assert.Equal(t, 20, day.Capacidad)
		assert.Equal(t, 20, day.Disponibles)
		assert.False(t, day.Completa)
	}
}

func TestExecute_CountsUsados(t *testing.T) {
	martes := lunes.AddDate(0, 0, 1)
	uc := newUseCase(&fakeResolver{
		capacidad: 10,
		usados:    map[string]int{martes.Format(domain.DateFormat): 10},
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{AgendaID: 1, Desde: lunes, Hasta: martes})
	require.NoError(t, err)
	require.Len(t, resp.Days, 2)

	assert.Equal(t, 10, resp.Days[0].Disponibles)
	assert.Equal(t, 0, resp.Days[1].Disponibles)
	assert.True(t, resp.Days[1].Completa)
}

func TestExecute_MarksFeriados(t *testing.T) {
	uc := newUseCase(
		&fakeResolver{capacidad: 0},
		map[string]*domain.Feriado{
			lunes.Format(domain.DateFormat): {Fecha: lunes, Descripcion: "Carnaval"},
		},
	)

	resp, err := uc.Execute(context.Background(), &Request{AgendaID: 1, Desde: lunes, Hasta: lunes})
	require.NoError(t, err)
	require.Len(t, resp.Days, 1)

	assert.True(t, resp.Days[0].Feriado)
	assert.Equal(t, "Carnaval", resp.Days[0].Descripcion)
	assert.Equal(t, 0, resp.Days[0].Capacidad)
}

func TestExecute_AgendaNotFound(t *testing.T) {
	uc := NewUseCase(&fakeResolver{}, &fakeAgendaRepo{missing: true}, &fakeFeriadoRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{AgendaID: 9, Desde: lunes, Hasta: lunes})
	assert.ErrorIs(t, err, ErrAgendaNotFound)
}

func TestExecute_RangeTooLongRejected(t *testing.T) {
	uc := newUseCase(&fakeResolver{capacidad: 20}, nil)

	_, err := uc.Execute(context.Background(), &Request{
		AgendaID: 1,
		Desde:    lunes,
		Hasta:    lunes.AddDate(0, 0, domain.MaxCalendarRangeDays),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
