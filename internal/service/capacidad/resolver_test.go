package capacidad

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lab-agenda/turnero-service/internal/domain"
	cupoRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/cupo"
	feriadoRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/feriado"
	weeklyRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/weekly"
)

// Понедельник 2026-03-02
var lunes = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

type fakeCupoRepo struct {
	cupo *domain.Cupo
	err  error
}

func (f *fakeCupoRepo) GetByAgendaAndFecha(_ context.Context, _ int64, _ time.Time) (*domain.Cupo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.cupo, nil
}

type fakeWeeklyRepo struct {
	entry *domain.WeeklyAvailability
	err   error
}

func (f *fakeWeeklyRepo) GetByAgendaAndWeekday(_ context.Context, _ int64, _ time.Weekday) (*domain.WeeklyAvailability, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.entry, nil
}

type fakeFeriadoRepo struct {
	feriado *domain.Feriado
	err     error
}

func (f *fakeFeriadoRepo) GetByFecha(_ context.Context, _ time.Time) (*domain.Feriado, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.feriado, nil
}

type fakeTurnoRepo struct {
	count int
	err   error
}

func (f *fakeTurnoRepo) CountByAgendaAndFecha(_ context.Context, _ int64, _ time.Time) (int, error) {
	return f.count, f.err
}

func newResolver(c *fakeCupoRepo, w *fakeWeeklyRepo, fe *fakeFeriadoRepo, t *fakeTurnoRepo) *Resolver {
	return NewResolver(c, w, fe, t)
}

func TestResolveCapacity_FeriadoZeroesEverything(t *testing.T) {
	// Feriado побеждает и cupo, и недельное расписание
	r := newResolver(
		&fakeCupoRepo{cupo: &domain.Cupo{CantidadTotal: 20}},
		&fakeWeeklyRepo{entry: &domain.WeeklyAvailability{Weekday: lunes.Weekday(), Capacidad: 15, Active: true}},
		&fakeFeriadoRepo{feriado: &domain.Feriado{Fecha: lunes, Descripcion: "Carnaval"}},
		&fakeTurnoRepo{},
	)

	capacidad, err := r.ResolveCapacity(context.Background(), 1, lunes)
	require.NoError(t, err)
	assert.Equal(t, 0, capacidad)
}

func TestResolveCapacity_CupoBeatsWeekly(t *testing.T) {
	// Явный cupo с меньшим значением побеждает недельное расписание
	r := newResolver(
		&fakeCupoRepo{cupo: &domain.Cupo{CantidadTotal: 2}},
		&fakeWeeklyRepo{entry: &domain.WeeklyAvailability{Weekday: lunes.Weekday(), Capacidad: 15, Active: true}},
		&fakeFeriadoRepo{err: feriadoRepo.ErrFeriadoNotFound},
		&fakeTurnoRepo{},
	)

	capacidad, err := r.ResolveCapacity(context.Background(), 1, lunes)
	require.NoError(t, err)
	assert.Equal(t, 2, capacidad)
}

func TestResolveCapacity_WeeklyFallback(t *testing.T) {
	r := newResolver(
		&fakeCupoRepo{err: cupoRepo.ErrCupoNotFound},
		&fakeWeeklyRepo{entry: &domain.WeeklyAvailability{Weekday: lunes.Weekday(), Capacidad: 15, Active: true}},
		&fakeFeriadoRepo{err: feriadoRepo.ErrFeriadoNotFound},
		&fakeTurnoRepo{},
	)

	capacidad, err := r.ResolveCapacity(context.Background(), 1, lunes)
	require.NoError(t, err)
	assert.Equal(t, 15, capacidad)
}

func TestResolveCapacity_InactiveWeeklyYieldsZero(t *testing.T) {
	r := newResolver(
		&fakeCupoRepo{err: cupoRepo.ErrCupoNotFound},
		&fakeWeeklyRepo{entry: &domain.WeeklyAvailability{Weekday: lunes.Weekday(), Capacidad: 15, Active: false}},
		&fakeFeriadoRepo{err: feriadoRepo.ErrFeriadoNotFound},
		&fakeTurnoRepo{},
	)

	capacidad, err := r.ResolveCapacity(context.Background(), 1, lunes)
	require.NoError(t, err)
	assert.Equal(t, 0, capacidad)
}

func TestResolveCapacity_WeeklyOutsideValidityYieldsZero(t *testing.T) {
	until := lunes.AddDate(0, 0, -7)
	r := newResolver(
		&fakeCupoRepo{err: cupoRepo.ErrCupoNotFound},
		&fakeWeeklyRepo{entry: &domain.WeeklyAvailability{
			Weekday:    lunes.Weekday(),
			Capacidad:  15,
			Active:     true,
			ValidUntil: &until,
		}},
		&fakeFeriadoRepo{err: feriadoRepo.ErrFeriadoNotFound},
		&fakeTurnoRepo{},
	)

	capacidad, err := r.ResolveCapacity(context.Background(), 1, lunes)
	require.NoError(t, err)
	assert.Equal(t, 0, capacidad)
}

func TestResolveCapacity_NoConfigurationYieldsZero(t *testing.T) {
	r := newResolver(
		&fakeCupoRepo{err: cupoRepo.ErrCupoNotFound},
		&fakeWeeklyRepo{err: weeklyRepo.ErrAvailabilityNotFound},
		&fakeFeriadoRepo{err: feriadoRepo.ErrFeriadoNotFound},
		&fakeTurnoRepo{},
	)

	capacidad, err := r.ResolveCapacity(context.Background(), 1, lunes)
	require.NoError(t, err)
	assert.Equal(t, 0, capacidad)
}

func TestResolveCapacity_RepositoryErrorIsInternal(t *testing.T) {
	r := newResolver(
		&fakeCupoRepo{err: errors.New("connection refused")},
		&fakeWeeklyRepo{},
		&fakeFeriadoRepo{err: feriadoRepo.ErrFeriadoNotFound},
		&fakeTurnoRepo{},
	)

	_, err := r.ResolveCapacity(context.Background(), 1, lunes)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestDisponibilidad_FloorsAtZero(t *testing.T) {
	// Уменьшение емкости ниже занятости не дает отрицательных disponibles
	r := newResolver(
		&fakeCupoRepo{cupo: &domain.Cupo{CantidadTotal: 2}},
		&fakeWeeklyRepo{err: weeklyRepo.ErrAvailabilityNotFound},
		&fakeFeriadoRepo{err: feriadoRepo.ErrFeriadoNotFound},
		&fakeTurnoRepo{count: 3},
	)

	disp, err := r.Disponibilidad(context.Background(), 1, lunes)
	require.NoError(t, err)
	assert.Equal(t, 2, disp.Capacidad)
	assert.Equal(t, 3, disp.Usados)
	assert.Equal(t, 0, disp.Disponibles())
	assert.True(t, disp.Completa())
}

func TestDisponibilidad_FreeSlots(t *testing.T) {
	r := newResolver(
		&fakeCupoRepo{cupo: &domain.Cupo{CantidadTotal: 20}},
		&fakeWeeklyRepo{err: weeklyRepo.ErrAvailabilityNotFound},
		&fakeFeriadoRepo{err: feriadoRepo.ErrFeriadoNotFound},
		&fakeTurnoRepo{count: 7},
	)

	disp, err := r.Disponibilidad(context.Background(), 1, lunes)
	require.NoError(t, err)
	assert.Equal(t, 13, disp.Disponibles())
	assert.False(t, disp.Completa())
}
