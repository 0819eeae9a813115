package cupo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/lab-agenda/turnero-service/internal/domain"
	"github.com/lab-agenda/turnero-service/pkg/dbmetrics"
	"github.com/lab-agenda/turnero-service/pkg/psqlbuilder"
)

// PostgreSQL error codes
const (
	pgUniqueViolation  = "23505"
	pgLockNotAvailable = "55P03"
)

// Repository репозиторий для работы с cupos (явная емкость агенды на дату)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория cupos
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LockAgendaFecha берет advisory lock на пару (agenda, fecha) в рамках текущей транзакции.
// Сериализует конкурирующие бронирования даже когда строки cupo не существует
// (емкость берется из недельного расписания и блокировать FOR UPDATE нечего).
// Блокировка снимается автоматически при commit/rollback.
// Должен вызываться только внутри транзакции.
func (r *Repository) LockAgendaFecha(ctx context.Context, agendaID int64, fecha time.Time) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return fmt.Errorf("%w: LockAgendaFecha - requires an active transaction", ErrExecQuery)
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Один bigint ключ: agendaID в старших битах, дата в днях от эпохи
	// в младших. Дней от эпохи меньше 2^21 на тысячелетия вперед, поэтому
	// разные пары (agenda, fecha) не делят точку сериализации
	epochDays := domain.NormalizeDate(fecha).Unix() / 86400
	lockKey := agendaID<<21 | epochDays

	_, err := executor.ExecContext(ctx,
		"SELECT pg_advisory_xact_lock($1)", lockKey)
	if err != nil {
		if isLockNotAvailable(err) {
			return fmt.Errorf("%w: LockAgendaFecha - agenda=%d fecha=%s: %v",
				ErrLockTimeout, agendaID, fecha.Format(domain.DateFormat), err)
		}
		return fmt.Errorf("%w: LockAgendaFecha - acquire advisory lock: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByAgendaAndFecha получает cupo для пары (agenda, fecha).
// Внутри транзакции добавляет FOR UPDATE, чтобы конкурирующие операции
// над той же парой ждали завершения текущей.
func (r *Repository) GetByAgendaAndFecha(ctx context.Context, agendaID int64, fecha time.Time) (*domain.Cupo, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"agenda_id",
		"fecha",
		"cantidad_total",
		"usuario",
		"created_at",
		"updated_at",
	).
		From("cupos").
		Where(squirrel.Eq{"agenda_id": agendaID, "fecha": domain.NormalizeDate(fecha)})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAgendaAndFecha - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Cupo
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.AgendaID,
		&c.Fecha,
		&c.CantidadTotal,
		&c.Usuario,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCupoNotFound
	}
	if err != nil {
		if isLockNotAvailable(err) {
			return nil, fmt.Errorf("%w: GetByAgendaAndFecha: %v", ErrLockTimeout, err)
		}
		return nil, fmt.Errorf("%w: GetByAgendaAndFecha - scan cupo: %v", ErrScanRow, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}

// Create создает новый cupo
func (r *Repository) Create(ctx context.Context, c *domain.Cupo) (*domain.Cupo, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cupos").
		Columns(
			"agenda_id",
			"fecha",
			"cantidad_total",
			"usuario",
		).
		Values(
			c.AgendaID,
			domain.NormalizeDate(c.Fecha),
			c.CantidadTotal,
			c.Usuario,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrCupoExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}

// UpdateCantidad перезаписывает cantidad_total существующего cupo
func (r *Repository) UpdateCantidad(ctx context.Context, id int64, cantidad int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("cupos").
		Set("cantidad_total", cantidad).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateCantidad - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateCantidad - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateCantidad - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCupoNotFound
	}

	return nil
}

// Delete удаляет cupo. Turnos при этом не затрагиваются: удаление емкости
// никогда не каскадирует на бронирования.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("cupos").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCupoNotFound
	}

	return nil
}

// ListByAgendaAndRange получает cupos агенды за период, отсортированные по дате
func (r *Repository) ListByAgendaAndRange(ctx context.Context, agendaID int64, desde, hasta time.Time) ([]*domain.Cupo, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"agenda_id",
		"fecha",
		"cantidad_total",
		"usuario",
		"created_at",
		"updated_at",
	).
		From("cupos").
		Where(squirrel.Eq{"agenda_id": agendaID}).
		Where(squirrel.GtOrEq{"fecha": domain.NormalizeDate(desde)}).
		Where(squirrel.LtOrEq{"fecha": domain.NormalizeDate(hasta)}).
		OrderBy("fecha ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByAgendaAndRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByAgendaAndRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	cupos := make([]*domain.Cupo, 0)
	for rows.Next() {
		var c domain.Cupo
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&c.ID,
			&c.AgendaID,
			&c.Fecha,
			&c.CantidadTotal,
			&c.Usuario,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByAgendaAndRange - scan row: %v", ErrScanRow, err)
		}

		c.CreatedAt = createdAt.Time
		c.UpdatedAt = updatedAt.Time
		cupos = append(cupos, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByAgendaAndRange - rows error: %v", ErrScanRow, err)
	}

	return cupos, nil
}

// isUniqueViolation проверяет нарушение уникального ограничения
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}

// isLockNotAvailable проверяет истечение lock_timeout при ожидании блокировки
func isLockNotAvailable(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgLockNotAvailable
}
