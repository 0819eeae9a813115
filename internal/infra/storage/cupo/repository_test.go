package cupo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lab-agenda/turnero-service/internal/domain"
	"github.com/lab-agenda/turnero-service/pkg/dbmetrics"
)

// Понедельник 2026-03-02
var lunes = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

const selectCupoQuery = "SELECT id, agenda_id, fecha, cantidad_total, usuario, created_at, updated_at FROM cupos WHERE agenda_id = $1 AND fecha = $2"

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func cupoRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "agenda_id", "fecha", "cantidad_total", "usuario", "created_at", "updated_at",
	}).AddRow(int64(5), int64(1), lunes, 20, "admin", time.Now(), time.Now())
}

func TestGetByAgendaAndFecha(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectCupoQuery)).
		WithArgs(int64(1), lunes).
		WillReturnRows(cupoRows())

	c, err := repo.GetByAgendaAndFecha(context.Background(), 1, lunes)
	require.NoError(t, err)
	assert.Equal(t, int64(5), c.ID)
	assert.Equal(t, 20, c.CantidadTotal)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByAgendaAndFecha_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectCupoQuery)).
		WithArgs(int64(1), lunes).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByAgendaAndFecha(context.Background(), 1, lunes)
	assert.ErrorIs(t, err, ErrCupoNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Внутри транзакции выборка добавляет FOR UPDATE
func TestGetByAgendaAndFecha_ForUpdateInTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(selectCupoQuery + " FOR UPDATE")).
		WithArgs(int64(1), lunes).
		WillReturnRows(cupoRows())
	mock.ExpectRollback()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	c, err := repo.GetByAgendaAndFecha(ctx, 1, lunes)
	require.NoError(t, err)
	assert.Equal(t, int64(5), c.ID)

	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLockAgendaFecha_RequiresTransaction(t *testing.T) {
	repo, mock := newMock(t)

	err := repo.LockAgendaFecha(context.Background(), 1, lunes)
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLockAgendaFecha(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	lockKey := int64(1)<<21 | lunes.Unix()/86400

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock($1)")).
		WithArgs(lockKey).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	require.NoError(t, repo.LockAgendaFecha(ctx, 1, lunes))
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Ключ блокировки не усекает agendaID: агенды с id за пределами int32
// не делят точку сериализации
func TestLockAgendaFecha_KeyKeepsFullAgendaID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	agendaID := int64(1) << 33
	lockKey := agendaID<<21 | lunes.Unix()/86400

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock($1)")).
		WithArgs(lockKey).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	require.NoError(t, repo.LockAgendaFecha(ctx, agendaID, lunes))
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLockAgendaFecha_Timeout(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock($1)")).
		WillReturnError(&pq.Error{Code: "55P03"})
	mock.ExpectRollback()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	assert.ErrorIs(t, repo.LockAgendaFecha(ctx, 1, lunes), ErrLockTimeout)
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO cupos (agenda_id,fecha,cantidad_total,usuario) VALUES ($1,$2,$3,$4) RETURNING id, created_at, updated_at")).
		WithArgs(int64(1), lunes, 20, "admin").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(7), time.Now(), time.Now()))

	c, err := repo.Create(context.Background(), &domain.Cupo{
		AgendaID:      1,
		Fecha:         lunes,
		CantidadTotal: 20,
		Usuario:       "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), c.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateIsErrCupoExists(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO cupos")).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), &domain.Cupo{
		AgendaID:      1,
		Fecha:         lunes,
		CantidadTotal: 20,
		Usuario:       "admin",
	})
	assert.ErrorIs(t, err, ErrCupoExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCantidad_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE cupos SET cantidad_total = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs(8, int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateCantidad(context.Background(), 99, 8)
	assert.ErrorIs(t, err, ErrCupoNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cupos WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}
