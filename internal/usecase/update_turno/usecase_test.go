package update_turno

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lab-agenda/turnero-service/internal/domain"
	agendaRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/agenda"
	feriadoRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/feriado"
	medicoRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/medico"
	turnoRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/turno"
	"github.com/lab-agenda/turnero-service/pkg/ptr"
)

var (
	lunes  = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	martes = time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fakeTurnoRepo struct {
	turno   *domain.Turno
	updated *domain.Turno
}

func (f *fakeTurnoRepo) GetByID(_ context.Context, id int64) (*domain.Turno, error) {
	if f.turno == nil || f.turno.ID != id {
		return nil, turnoRepo.ErrTurnoNotFound
	}
	return f.turno, nil
}

func (f *fakeTurnoRepo) Update(_ context.Context, t *domain.Turno) error {
	out := *t
	f.updated = &out
	return nil
}

type fakeCupoRepo struct{ lockCalls int }

func (f *fakeCupoRepo) LockAgendaFecha(_ context.Context, _ int64, _ time.Time) error {
	f.lockCalls++
	return nil
}

type fakeFeriadoRepo struct{ feriado *domain.Feriado }

func (f *fakeFeriadoRepo) GetByFecha(_ context.Context, _ time.Time) (*domain.Feriado, error) {
	if f.feriado != nil {
		return f.feriado, nil
	}
	return nil, feriadoRepo.ErrFeriadoNotFound
}

type fakeAgendaRepo struct{ missing bool }

func (f *fakeAgendaRepo) GetByID(_ context.Context, id int64) (*domain.Agenda, error) {
	if f.missing {
		return nil, agendaRepo.ErrAgendaNotFound
	}
	return &domain.Agenda{ID: id}, nil
}

type fakeMedicoRepo struct{ medico *domain.Medico }

func (f *fakeMedicoRepo) FindByNombre(_ context.Context, _ string) (*domain.Medico, error) {
	if f.medico == nil {
		return nil, medicoRepo.ErrMedicoNotFound
	}
	return f.medico, nil
}

type fakeResolver struct {
	capacidad int
	usados    int
}

func (r *fakeResolver) ResolveCapacity(_ context.Context, _ int64, _ time.Time) (int, error) {
	return r.capacidad, nil
}

func (r *fakeResolver) CountUsados(_ context.Context, _ int64, _ time.Time) (int, error) {
	return r.usados, nil
}

type countingTxManager struct{ calls int }

func (m *countingTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fixture struct {
	turnos   *fakeTurnoRepo
	cupos    *fakeCupoRepo
	feriados *fakeFeriadoRepo
	agendas  *fakeAgendaRepo
	medicos  *fakeMedicoRepo
	resolver *fakeResolver
	tx       *countingTxManager
	uc       *UseCase
}

func newFixture(resolver *fakeResolver) *fixture {
	f := &fixture{
		turnos: &fakeTurnoRepo{turno: &domain.Turno{
			ID:              1,
			AgendaID:        1,
			Fecha:           lunes,
			PacienteID:      42,
			Determinaciones: "Hemograma completo",
		}},
		cupos:    &fakeCupoRepo{},
		feriados: &fakeFeriadoRepo{},
		agendas:  &fakeAgendaRepo{},
		medicos:  &fakeMedicoRepo{},
		resolver: resolver,
		tx:       &countingTxManager{},
	}
	f.uc = NewUseCase(f.turnos, f.cupos, f.feriados, f.agendas, f.medicos,
		f.resolver, f.tx, noopLogger{})
	return f
}

// Редактирование без переноса не берет блокировку и не открывает транзакцию
func TestExecute_SamePairEditSkipsLockAndTransaction(t *testing.T) {
	f := newFixture(&fakeResolver{capacidad: 20})

	resp, err := f.uc.Execute(context.Background(), &Request{
		TurnoID:         1,
		Determinaciones: ptr.Ptr("Glucemia"),
	})
	require.NoError(t, err)

	assert.False(t, resp.Rescheduled)
	assert.Equal(t, "Glucemia", resp.Determinaciones)
	assert.Equal(t, 0, f.cupos.lockCalls)
	assert.Equal(t, 0, f.tx.calls)
	require.NotNil(t, f.turnos.updated)
	assert.Equal(t, lunes, f.turnos.updated.Fecha)
}

// Перенос на свободную дату проходит полную booking-транзакцию под блокировкой
func TestExecute_RescheduleRunsFullBookingTransaction(t *testing.T) {
	f := newFixture(&fakeResolver{capacidad: 20, usados: 3})

	resp, err := f.uc.Execute(context.Background(), &Request{
		TurnoID: 1,
		Fecha:   &martes,
	})
	require.NoError(t, err)

	assert.True(t, resp.Rescheduled)
	assert.Equal(t, martes, resp.Fecha)
	assert.Equal(t, 1, f.cupos.lockCalls)
	assert.Equal(t, 1, f.tx.calls)
	require.NotNil(t, f.turnos.updated)
	assert.Equal(t, martes, f.turnos.updated.Fecha)
}

// Перенос на заполненную дату отклоняется до записи изменений
func TestExecute_RescheduleToFullDateRejected(t *testing.T) {
	f := newFixture(&fakeResolver{capacidad: 2, usados: 2})

	_, err := f.uc.Execute(context.Background(), &Request{
		TurnoID: 1,
		Fecha:   &martes,
	})
	assert.ErrorIs(t, err, ErrFechaCompleta)
	assert.Equal(t, 1, f.cupos.lockCalls)
	assert.Nil(t, f.turnos.updated)
}

func TestExecute_RescheduleToFeriadoRejected(t *testing.T) {
	f := newFixture(&fakeResolver{capacidad: 20})
	f.feriados.feriado = &domain.Feriado{Fecha: martes, Descripcion: "Carnaval"}

	_, err := f.uc.Execute(context.Background(), &Request{
		TurnoID: 1,
		Fecha:   &martes,
	})
	assert.ErrorIs(t, err, ErrFeriado)
	assert.Nil(t, f.turnos.updated)
}

func TestExecute_RescheduleToWeekendRejected(t *testing.T) {
	f := newFixture(&fakeResolver{capacidad: 20})
	sabado := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), &Request{
		TurnoID: 1,
		Fecha:   &sabado,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, f.cupos.lockCalls)
}

func TestExecute_EmptyMedicoNombreDetaches(t *testing.T) {
	f := newFixture(&fakeResolver{capacidad: 20})
	medicoID := int64(7)
	f.turnos.turno.MedicoID = &medicoID

	resp, err := f.uc.Execute(context.Background(), &Request{
		TurnoID:      1,
		MedicoNombre: ptr.Ptr(""),
	})
	require.NoError(t, err)
	assert.Nil(t, resp.MedicoID)
}

func TestExecute_TurnoNotFound(t *testing.T) {
	f := newFixture(&fakeResolver{capacidad: 20})

	_, err := f.uc.Execute(context.Background(), &Request{TurnoID: 99})
	assert.ErrorIs(t, err, ErrTurnoNotFound)
}
