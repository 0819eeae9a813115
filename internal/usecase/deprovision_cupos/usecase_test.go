package deprovision_cupos

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lab-agenda/turnero-service/internal/domain"
	agendaRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/agenda"
	cupoRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/cupo"
	"github.com/lab-agenda/turnero-service/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fakeCupoRepo struct {
	cupos map[string]*domain.Cupo
}

func key(agendaID int64, fecha time.Time) string {
	return fmt.Sprintf("%d/%s", agendaID, fecha.Format(domain.DateFormat))
}

// seed заполняет репозиторий cupos на рабочие дни периода
func (f *fakeCupoRepo) seed(agendaID int64, desde, hasta time.Time, cantidad int) {
	id := int64(0)
	for fecha := desde; !fecha.After(hasta); fecha = fecha.AddDate(0, 0, 1) {
		if domain.IsWeekend(fecha) {
			continue
		}
		id++
		f.cupos[key(agendaID, fecha)] = &domain.Cupo{
			ID:            id,
			AgendaID:      agendaID,
			Fecha:         fecha,
			CantidadTotal: cantidad,
		}
	}
}

func (f *fakeCupoRepo) GetByAgendaAndFecha(_ context.Context, agendaID int64, fecha time.Time) (*domain.Cupo, error) {
	c, ok := f.cupos[key(agendaID, fecha)]
	if !ok {
		return nil, cupoRepo.ErrCupoNotFound
	}
	return c, nil
}

func (f *fakeCupoRepo) UpdateCantidad(_ context.Context, id int64, cantidad int) error {
	for _, c := range f.cupos {
		if c.ID == id {
			c.CantidadTotal = cantidad
			return nil
		}
	}
	return cupoRepo.ErrCupoNotFound
}

func (f *fakeCupoRepo) Delete(_ context.Context, id int64) error {
	for k, c := range f.cupos {
		if c.ID == id {
			delete(f.cupos, k)
			return nil
		}
	}
	return cupoRepo.ErrCupoNotFound
}

type fakeAgendaRepo struct{ missing bool }

func (f *fakeAgendaRepo) GetByID(_ context.Context, id int64) (*domain.Agenda, error) {
	if f.missing {
		return nil, agendaRepo.ErrAgendaNotFound
	}
	return &domain.Agenda{ID: id}, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var (
	desde = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // lunes
	hasta = time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC) // domingo
)

func newSeededRepo(cantidad int) *fakeCupoRepo {
	repo := &fakeCupoRepo{cupos: make(map[string]*domain.Cupo)}
	repo.seed(1, desde, hasta, cantidad)
	return repo
}

func newUseCase(repo *fakeCupoRepo, agendas *fakeAgendaRepo) *UseCase {
	return NewUseCase(repo, agendas, fakeTxManager{}, noopLogger{})
}

func TestExecute_DeletesOutrightWithoutCantidad(t *testing.T) {
	repo := newSeededRepo(10)
	uc := newUseCase(repo, &fakeAgendaRepo{})

	summary, err := uc.Execute(context.Background(), &Request{
		AgendaID: 1,
		Desde:    desde,
		Hasta:    hasta,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Eliminados)
	assert.Equal(t, 0, summary.Reducidos)
	assert.Empty(t, repo.cupos)
}

func TestExecute_ReducesCantidad(t *testing.T) {
	repo := newSeededRepo(10)
	uc := newUseCase(repo, &fakeAgendaRepo{})

	summary, err := uc.Execute(context.Background(), &Request{
		AgendaID: 1,
		Desde:    desde,
		Hasta:    hasta,
		Cantidad: ptr.Ptr(6),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Eliminados)
	assert.Equal(t, 5, summary.Reducidos)
	for _, c := range repo.cupos {
		assert.Equal(t, 4, c.CantidadTotal)
	}
}

func TestExecute_DeletesWhenReductionHitsZero(t *testing.T) {
	repo := newSeededRepo(5)
	uc := newUseCase(repo, &fakeAgendaRepo{})

	// Уменьшение на полную емкость эквивалентно удалению
	summary, err := uc.Execute(context.Background(), &Request{
		AgendaID: 1,
		Desde:    desde,
		Hasta:    hasta,
		Cantidad: ptr.Ptr(5),
	})
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Eliminados)
	assert.Equal(t, 0, summary.Reducidos)
	assert.Empty(t, repo.cupos)
}

func TestExecute_WeekdayFilter(t *testing.T) {
	repo := newSeededRepo(10)
	uc := newUseCase(repo, &fakeAgendaRepo{})

	summary, err := uc.Execute(context.Background(), &Request{
		AgendaID: 1,
		Desde:    desde,
		Hasta:    hasta,
		Weekday:  ptr.Ptr(time.Friday),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Eliminados)
	assert.Len(t, repo.cupos, 4)

	viernes := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
	_, ok := repo.cupos[key(1, viernes)]
	assert.False(t, ok)
}

func TestExecute_MissingCuposAreSkippedSilently(t *testing.T) {
	// Пустой репозиторий: нечего удалять - не ошибка
	repo := &fakeCupoRepo{cupos: make(map[string]*domain.Cupo)}
	uc := newUseCase(repo, &fakeAgendaRepo{})

	summary, err := uc.Execute(context.Background(), &Request{
		AgendaID: 1,
		Desde:    desde,
		Hasta:    hasta,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Eliminados)
	assert.Equal(t, 0, summary.Reducidos)
}

func TestExecute_AgendaNotFound(t *testing.T) {
	uc := newUseCase(newSeededRepo(10), &fakeAgendaRepo{missing: true})

	_, err := uc.Execute(context.Background(), &Request{
		AgendaID: 99,
		Desde:    desde,
		Hasta:    hasta,
	})
	assert.ErrorIs(t, err, ErrAgendaNotFound)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newUseCase(newSeededRepo(10), &fakeAgendaRepo{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero agenda", &Request{AgendaID: 0, Desde: desde, Hasta: hasta}},
		{"missing range", &Request{AgendaID: 1}},
		{"inverted range", &Request{AgendaID: 1, Desde: hasta, Hasta: desde}},
		{"non-positive cantidad", &Request{AgendaID: 1, Desde: desde, Hasta: hasta, Cantidad: ptr.Ptr(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
