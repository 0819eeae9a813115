package feriado

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

const pgUniqueViolation = "23505"

// Repository репозиторий для работы с feriados (праздничные дни)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория feriados
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByFecha получает feriado на указанную дату
func (r *Repository) GetByFecha(ctx context.Context, fecha time.Time) (*domain.Feriado, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"fecha",
		"descripcion",
		"created_at",
	).
		From("feriados").
		Where(squirrel.Eq{"fecha": domain.NormalizeDate(fecha)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByFecha - build select query: %v", ErrBuildQuery, err)
	}

	var f domain.Feriado
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&f.ID,
		&f.Fecha,
		&f.Descripcion,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrFeriadoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFecha - scan feriado: %v", ErrScanRow, err)
	}

	f.CreatedAt = createdAt.Time

	return &f, nil
}

// List получает все feriados, отсортированные по дате
func (r *Repository) List(ctx context.Context) ([]*domain.Feriado, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"fecha",
		"descripcion",
		"created_at",
	).
		From("feriados").
		OrderBy("fecha ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	feriados := make([]*domain.Feriado, 0)
	for rows.Next() {
		var f domain.Feriado
		var createdAt sql.NullTime

		if err := rows.Scan(&f.ID, &f.Fecha, &f.Descripcion, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		f.CreatedAt = createdAt.Time
		feriados = append(feriados, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return feriados, nil
}

// Create создает новый feriado
func (r *Repository) Create(ctx context.Context, f *domain.Feriado) (*domain.Feriado, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("feriados").
		Columns("fecha", "descripcion").
		Values(domain.NormalizeDate(f.Fecha), f.Descripcion).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&f.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrFeriadoExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	f.CreatedAt = createdAt.Time

	return f, nil
}

// Delete удаляет feriado
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("feriados").
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
		return ErrFeriadoNotFound
	}

	return nil
}
