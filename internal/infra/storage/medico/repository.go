package medico

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/lab-agenda/turnero-service/internal/domain"
	"github.com/lab-agenda/turnero-service/pkg/dbmetrics"
	"github.com/lab-agenda/turnero-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы со справочником медиков
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория медиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает медика по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Medico, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"nombre",
		"matricula",
		"created_at",
	).
		From("medicos").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...))
}

// FindByNombre ищет медика по имени: сначала точное совпадение,
// затем первый по подстроке (регистронезависимо)
func (r *Repository) FindByNombre(ctx context.Context, nombre string) (*domain.Medico, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"nombre",
		"matricula",
		"created_at",
	).
		From("medicos").
		Where(squirrel.Eq{"nombre": nombre}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindByNombre - build select query: %v", ErrBuildQuery, err)
	}

	m, err := r.scanOne(executor.QueryRowContext(ctx, query, args...))
	if err == nil {
		return m, nil
	}
	if err != ErrMedicoNotFound {
		return nil, err
	}

	// Точного совпадения нет - ищем по подстроке
	query, args, err = psqlbuilder.Select(
		"id",
		"nombre",
		"matricula",
		"created_at",
	).
		From("medicos").
		Where(squirrel.ILike{"nombre": "%" + nombre + "%"}).
		OrderBy("nombre ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindByNombre - build ilike query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...))
}

func (r *Repository) scanOne(row *sql.Row) (*domain.Medico, error) {
	var m domain.Medico
	var createdAt sql.NullTime

	err := row.Scan(&m.ID, &m.Nombre, &m.Matricula, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrMedicoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanOne - scan medico: %v", ErrScanRow, err)
	}

	m.CreatedAt = createdAt.Time

	return &m, nil
}
