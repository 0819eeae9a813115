package paciente

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/lab-agenda/turnero-service/internal/domain"
	"github.com/lab-agenda/turnero-service/pkg/dbmetrics"
	"github.com/lab-agenda/turnero-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с реестром пациентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пациентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает пациента по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Paciente, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

// GetByDocumento получает пациента по номеру документа
func (r *Repository) GetByDocumento(ctx context.Context, documento string) (*domain.Paciente, error) {
	return r.getBy(ctx, squirrel.Eq{"documento": documento})
}

func (r *Repository) getBy(ctx context.Context, cond squirrel.Eq) (*domain.Paciente, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"documento",
		"nombre",
		"apellido",
		"fecha_nacimiento",
		"sexo",
		"telefono",
		"email",
		"observaciones",
		"created_at",
		"updated_at",
	).
		From("pacientes").
		Where(cond).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getBy - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Paciente
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.Documento,
		&p.Nombre,
		&p.Apellido,
		&p.FechaNacimiento,
		&p.Sexo,
		&p.Telefono,
		&p.Email,
		&p.Observaciones,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPacienteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getBy - scan paciente: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// UpsertByDocumento создает пациента или обновляет его данные по номеру документа.
// Реестр пациентов всегда отражает последние предоставленные данные:
// каждое бронирование обновляет демографию.
func (r *Repository) UpsertByDocumento(ctx context.Context, p *domain.Paciente) (*domain.Paciente, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("pacientes").
		Columns(
			"documento",
			"nombre",
			"apellido",
			"fecha_nacimiento",
			"sexo",
			"telefono",
			"email",
			"observaciones",
		).
		Values(
			p.Documento,
			p.Nombre,
			p.Apellido,
			p.FechaNacimiento,
			p.Sexo,
			p.Telefono,
			p.Email,
			p.Observaciones,
		).
		Suffix(`ON CONFLICT (documento) DO UPDATE SET
			nombre = EXCLUDED.nombre,
			apellido = EXCLUDED.apellido,
			fecha_nacimiento = EXCLUDED.fecha_nacimiento,
			sexo = EXCLUDED.sexo,
			telefono = COALESCE(EXCLUDED.telefono, pacientes.telefono),
			email = COALESCE(EXCLUDED.email, pacientes.email),
			observaciones = EXCLUDED.observaciones,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertByDocumento - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertByDocumento - execute upsert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}
