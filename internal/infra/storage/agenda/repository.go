package agenda

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/lab-agenda/turnero-service/internal/domain"
	"github.com/lab-agenda/turnero-service/pkg/dbmetrics"
	"github.com/lab-agenda/turnero-service/pkg/psqlbuilder"
)

// PostgreSQL error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Repository репозиторий для работы с агендами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория агенд
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает агенду по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Agenda, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

// GetBySlug получает агенду по slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Agenda, error) {
	return r.getBy(ctx, squirrel.Eq{"slug": slug})
}

func (r *Repository) getBy(ctx context.Context, cond squirrel.Eq) (*domain.Agenda, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"slug",
		"color",
		"usuario",
		"created_at",
		"updated_at",
	).
		From("agendas").
		Where(cond).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getBy - build select query: %v", ErrBuildQuery, err)
	}

	var a domain.Agenda
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.ID,
		&a.Name,
		&a.Slug,
		&a.Color,
		&a.Usuario,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAgendaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getBy - scan agenda: %v", ErrScanRow, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}

// List получает все агенды, отсортированные по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Agenda, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"slug",
		"color",
		"usuario",
		"created_at",
		"updated_at",
	).
		From("agendas").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	agendas := make([]*domain.Agenda, 0)
	for rows.Next() {
		var a domain.Agenda
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.Slug,
			&a.Color,
			&a.Usuario,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		a.CreatedAt = createdAt.Time
		a.UpdatedAt = updatedAt.Time
		agendas = append(agendas, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return agendas, nil
}

// Create создает новую агенду
func (r *Repository) Create(ctx context.Context, a *domain.Agenda) (*domain.Agenda, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("agendas").
		Columns("name", "slug", "color", "usuario").
		Values(a.Name, a.Slug, a.Color, a.Usuario).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrAgendaExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return a, nil
}

// Delete удаляет агенду.
// Cupos каскадируются на уровне схемы; при наличии turnos БД отклоняет
// удаление (FK RESTRICT) и возвращается ErrAgendaInUse.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("agendas").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgForeignKeyViolation {
			return ErrAgendaInUse
		}
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAgendaNotFound
	}

	return nil
}
