package create_turno

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lab-agenda/turnero-service/internal/domain"
	agendaRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/agenda"
	feriadoRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/feriado"
	medicoRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/medico"
)

// Понедельник 2026-03-02
var lunes = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// ledger общее состояние фейковых репозиториев: хранит turnos и емкость
// и сериализует транзакции мьютексом, как это делает advisory lock в PostgreSQL
type ledger struct {
	mu        sync.Mutex
	capacidad int
	feriado   *domain.Feriado
	turnos    []*domain.Turno
	nextID    int64
}

type fakeCupoRepo struct{ l *ledger }

// LockAgendaFecha захватывает мьютекс ledger; lockReleasingTxManager
// отпускает его на выходе из транзакции, как advisory lock на commit
func (f *fakeCupoRepo) LockAgendaFecha(_ context.Context, _ int64, _ time.Time) error {
	f.l.mu.Lock()
	return nil
}

type fakeFeriadoRepo struct{ l *ledger }

func (f *fakeFeriadoRepo) GetByFecha(_ context.Context, _ time.Time) (*domain.Feriado, error) {
	if f.l.feriado != nil {
		return f.l.feriado, nil
	}
	return nil, feriadoRepo.ErrFeriadoNotFound
}

type fakeAgendaRepo struct{ missing bool }

func (f *fakeAgendaRepo) GetByID(_ context.Context, id int64) (*domain.Agenda, error) {
	if f.missing {
		return nil, agendaRepo.ErrAgendaNotFound
	}
	return &domain.Agenda{ID: id, Name: "Ambulatorio", Slug: "ambulatorio"}, nil
}

type fakePacienteRepo struct{}

func (f *fakePacienteRepo) UpsertByDocumento(_ context.Context, p *domain.Paciente) (*domain.Paciente, error) {
	out := *p
	out.ID = 42
	return &out, nil
}

type fakeMedicoRepo struct{ medico *domain.Medico }

func (f *fakeMedicoRepo) FindByNombre(_ context.Context, _ string) (*domain.Medico, error) {
	if f.medico == nil {
		return nil, medicoRepo.ErrMedicoNotFound
	}
	return f.medico, nil
}

type fakeResolver struct{ l *ledger }

func (r *fakeResolver) ResolveCapacity(_ context.Context, _ int64, _ time.Time) (int, error) {
	if r.l.feriado != nil {
		return 0, nil
	}
	return r.l.capacidad, nil
}

func (r *fakeResolver) CountUsados(_ context.Context, _ int64, _ time.Time) (int, error) {
	return len(r.l.turnos), nil
}

type fakeTurnoRepo struct{ l *ledger }

func (f *fakeTurnoRepo) Create(_ context.Context, t *domain.Turno) (*domain.Turno, error) {
	f.l.nextID++
	out := *t
	out.ID = f.l.nextID
	out.CreatedAt = time.Now()
	f.l.turnos = append(f.l.turnos, &out)
	return &out, nil
}

// lockReleasingTxManager отпускает мьютекс ledger при выходе из транзакции,
// имитируя освобождение advisory lock на commit/rollback
type lockReleasingTxManager struct{ l *ledger }

func (m *lockReleasingTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	m.l.mu.Unlock()
	return err
}

func newUseCase(l *ledger, medico *domain.Medico) *UseCase {
	return NewUseCase(
		&fakeTurnoRepo{l: l},
		&fakeCupoRepo{l: l},
		&fakeFeriadoRepo{l: l},
		&fakeAgendaRepo{},
		&fakePacienteRepo{},
		&fakeMedicoRepo{medico: medico},
		&fakeResolver{l: l},
		&lockReleasingTxManager{l: l},
		noopLogger{},
	)
}

func validRequest() *Request {
	return &Request{
		AgendaID:        1,
		Fecha:           lunes,
		Documento:       "30123456",
		Nombre:          "Ana",
		Apellido:        "García",
		FechaNacimiento: time.Date(1985, 4, 12, 0, 0, 0, 0, time.UTC),
		Sexo:            "F",
		Determinaciones: "Hemograma completo",
		Usuario:         "recepcion1",
	}
}

func TestExecute_CreatesTurno(t *testing.T) {
	l := &ledger{capacidad: 20}
	uc := newUseCase(l, nil)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(42), resp.PacienteID)
	assert.Nil(t, resp.MedicoID)
	assert.Equal(t, 20, resp.Capacidad)
	assert.Equal(t, 1, resp.Usados)
	assert.Equal(t, 19, resp.Disponibles)
}

func TestExecute_AttachesMedicoWhenFound(t *testing.T) {
	l := &ledger{capacidad: 20}
	uc := newUseCase(l, &domain.Medico{ID: 7, Nombre: "Dr. Pérez"})

	req := validRequest()
	req.MedicoNombre = "Pérez"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.MedicoID)
	assert.Equal(t, int64(7), *resp.MedicoID)
}

func TestExecute_UnknownMedicoIsNotAnError(t *testing.T) {
	l := &ledger{capacidad: 20}
	uc := newUseCase(l, nil)

	req := validRequest()
	req.MedicoNombre = "Desconocido"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, resp.MedicoID)
}

func TestExecute_AgendaNotFound(t *testing.T) {
	l := &ledger{capacidad: 20}
	uc := NewUseCase(
		&fakeTurnoRepo{l: l},
		&fakeCupoRepo{l: l},
		&fakeFeriadoRepo{l: l},
		&fakeAgendaRepo{missing: true},
		&fakePacienteRepo{},
		&fakeMedicoRepo{},
		&fakeResolver{l: l},
		&lockReleasingTxManager{l: l},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAgendaNotFound)
}

func TestExecute_FeriadoBlocksBooking(t *testing.T) {
	l := &ledger{
		capacidad: 20,
		feriado:   &domain.Feriado{Fecha: lunes, Descripcion: "Día del Trabajador"},
	}
	uc := newUseCase(l, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFeriado)
	assert.Contains(t, err.Error(), "Día del Trabajador")
	assert.Empty(t, l.turnos)
}

func TestExecute_SinCupoWhenNoCapacityConfigured(t *testing.T) {
	l := &ledger{capacidad: 0}
	uc := newUseCase(l, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSinCupo)
}

func TestExecute_FechaCompletaWhenFull(t *testing.T) {
	l := &ledger{capacidad: 1}
	uc := newUseCase(l, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrFechaCompleta)
	assert.Len(t, l.turnos, 1)
}

func TestExecute_ValidationRejectsWeekend(t *testing.T) {
	l := &ledger{capacidad: 20}
	uc := newUseCase(l, nil)

	req := validRequest()
	req.Fecha = time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC) // сабадо

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ValidationRejectsMissingDocumento(t *testing.T) {
	l := &ledger{capacidad: 20}
	uc := newUseCase(l, nil)

	req := validRequest()
	req.Documento = ""

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// Два конкурирующих запроса на последний слот: ровно один создает turno,
// второй получает ErrFechaCompleta после перечитывания под блокировкой
func TestExecute_ConcurrentRequestsForLastSlot(t *testing.T) {
	l := &ledger{capacidad: 1}
	uc := newUseCase(l, nil)

	var wg sync.WaitGroup
	errs := make([]error, 2)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	var created, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			created++
		case errors.Is(err, ErrFechaCompleta):
			rejected++
		}
	}

	assert.Equal(t, 1, created, "exactly one booking must win the last slot")
	assert.Equal(t, 1, rejected, "the loser must see ErrFechaCompleta")
	assert.Len(t, l.turnos, 1)
}
