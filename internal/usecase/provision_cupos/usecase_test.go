package provision_cupos

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
	cupos  map[string]*domain.Cupo
	nextID int64
}

func newFakeCupoRepo() *fakeCupoRepo {
	return &fakeCupoRepo{cupos: make(map[string]*domain.Cupo)}
}

func key(agendaID int64, fecha time.Time) string {
	return fmt.Sprintf("%d/%s", agendaID, fecha.Format(domain.DateFormat))
}

func (f *fakeCupoRepo) GetByAgendaAndFecha(_ context.Context, agendaID int64, fecha time.Time) (*domain.Cupo, error) {
	c, ok := f.cupos[key(agendaID, fecha)]
	if !ok {
		return nil, cupoRepo.ErrCupoNotFound
	}
	return c, nil
}

func (f *fakeCupoRepo) Create(_ context.Context, c *domain.Cupo) (*domain.Cupo, error) {
	f.nextID++
	out := *c
	out.ID = f.nextID
	f.cupos[key(c.AgendaID, c.Fecha)] = &out
	return &out, nil
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

func newUseCase(repo *fakeCupoRepo, agendas *fakeAgendaRepo) *UseCase {
	return NewUseCase(repo, agendas, fakeTxManager{}, noopLogger{})
}

// Неделя 2026-03-02 (lunes) .. 2026-03-08 (domingo)
func weekRequest() *Request {
	return &Request{
		AgendaID:      1,
		Desde:         time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Hasta:         time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		CantidadTotal: 20,
		Usuario:       "admin",
	}
}

func TestExecute_SkipsWeekends(t *testing.T) {
	repo := newFakeCupoRepo()
	uc := newUseCase(repo, &fakeAgendaRepo{})

	summary, err := uc.Execute(context.Background(), weekRequest())
	require.NoError(t, err)

	// 5 рабочих дней, суббота и воскресенье пропущены
	assert.Equal(t, 5, summary.Creados)
	assert.Equal(t, 0, summary.Actualizados)
	assert.Len(t, repo.cupos, 5)

	sabado := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	_, ok := repo.cupos[key(1, sabado)]
	assert.False(t, ok)
}

func TestExecute_WeekdayFilter(t *testing.T) {
	repo := newFakeCupoRepo()
	uc := newUseCase(repo, &fakeAgendaRepo{})

	req := weekRequest()
	miercoles := time.Wednesday
	req.Weekday = &miercoles

	summary, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Creados)
	assert.Len(t, repo.cupos, 1)

	c := repo.cupos[key(1, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC))]
	require.NotNil(t, c)
	assert.Equal(t, 20, c.CantidadTotal)
}

func TestExecute_OverwritesExistingCupos(t *testing.T) {
	repo := newFakeCupoRepo()
	uc := newUseCase(repo, &fakeAgendaRepo{})

	_, err := uc.Execute(context.Background(), weekRequest())
	require.NoError(t, err)

	// Повторный прогон с другой емкостью перезаписывает все строки
	req := weekRequest()
	req.CantidadTotal = 8

	summary, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Creados)
	assert.Equal(t, 5, summary.Actualizados)
	for _, c := range repo.cupos {
		assert.Equal(t, 8, c.CantidadTotal)
	}
}

func TestExecute_AgendaNotFound(t *testing.T) {
	uc := newUseCase(newFakeCupoRepo(), &fakeAgendaRepo{missing: true})

	_, err := uc.Execute(context.Background(), weekRequest())
	assert.ErrorIs(t, err, ErrAgendaNotFound)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newUseCase(newFakeCupoRepo(), &fakeAgendaRepo{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero agenda", func(r *Request) { r.AgendaID = 0 }},
		{"inverted range", func(r *Request) { r.Desde, r.Hasta = r.Hasta, r.Desde }},
		{"zero cantidad", func(r *Request) { r.CantidadTotal = 0 }},
		{"cantidad over limit", func(r *Request) { r.CantidadTotal = domain.MaxCantidadTotal + 1 }},
		{"weekend filter", func(r *Request) { r.Weekday = ptr.Ptr(time.Saturday) }},
		{"range too long", func(r *Request) { r.Hasta = r.Desde.AddDate(2, 0, 0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := weekRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
