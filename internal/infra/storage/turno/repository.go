package turno

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/lab-agenda/turnero-service/internal/domain"
	"github.com/lab-agenda/turnero-service/pkg/dbmetrics"
	"github.com/lab-agenda/turnero-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с turnos (бронирования)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория turnos
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый turno.
// Проверка емкости выполняется в usecase под блокировкой (agenda, fecha);
// репозиторий только вставляет строку.
func (r *Repository) Create(ctx context.Context, t *domain.Turno) (*domain.Turno, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("turnos").
		Columns(
			"agenda_id",
			"fecha",
			"paciente_id",
			"medico_id",
			"determinaciones",
			"nota_interna",
			"usuario",
		).
		Values(
			t.AgendaID,
			domain.NormalizeDate(t.Fecha),
			t.PacienteID,
			t.MedicoID,
			t.Determinaciones,
			t.NotaInterna,
			t.Usuario,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return t, nil
}

// GetByID получает turno по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Turno, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"agenda_id",
		"fecha",
		"paciente_id",
		"medico_id",
		"determinaciones",
		"nota_interna",
		"usuario",
		"created_at",
		"updated_at",
	).
		From("turnos").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	t, err := scanTurno(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTurnoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan turno: %v", ErrScanRow, err)
	}

	return t, nil
}

// CountByAgendaAndFecha считает turnos для пары (agenda, fecha).
// Емкость считается количеством строк, никогда суммированием.
// Внутри booking-транзакции вызывается после захвата блокировки пары,
// поэтому результат авторитативен; вне транзакции допустимо устаревшее
// значение (предварительные проверки, UI).
func (r *Repository) CountByAgendaAndFecha(ctx context.Context, agendaID int64, fecha time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("turnos").
		Where(squirrel.Eq{"agenda_id": agendaID, "fecha": domain.NormalizeDate(fecha)}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByAgendaAndFecha - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByAgendaAndFecha - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// ListByFilter получает turnos с фильтрацией по агенде, периоду и документу пациента
func (r *Repository) ListByFilter(ctx context.Context, filter domain.TurnosFilter) ([]*domain.Turno, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"t.id",
		"t.agenda_id",
		"t.fecha",
		"t.paciente_id",
		"t.medico_id",
		"t.determinaciones",
		"t.nota_interna",
		"t.usuario",
		"t.created_at",
		"t.updated_at",
	).
		From("turnos t").
		OrderBy("t.fecha ASC, t.created_at ASC")

	if filter.AgendaID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"t.agenda_id": *filter.AgendaID})
	}
	if filter.FechaFrom != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"t.fecha": domain.NormalizeDate(*filter.FechaFrom)})
	}
	if filter.FechaTo != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"t.fecha": domain.NormalizeDate(*filter.FechaTo)})
	}
	if filter.Documento != nil {
		selectBuilder = selectBuilder.
			Join("pacientes p ON p.id = t.paciente_id").
			Where(squirrel.Eq{"p.documento": *filter.Documento})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	turnos := make([]*domain.Turno, 0)
	for rows.Next() {
		t, err := scanTurno(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByFilter - scan row: %v", ErrScanRow, err)
		}
		turnos = append(turnos, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByFilter - rows error: %v", ErrScanRow, err)
	}

	return turnos, nil
}

// Update обновляет данные turno.
// Перенос на другую пару (agenda, fecha) должен выполняться через
// booking-транзакцию; репозиторий инвариантов не проверяет.
func (r *Repository) Update(ctx context.Context, t *domain.Turno) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("turnos").
		Set("agenda_id", t.AgendaID).
		Set("fecha", domain.NormalizeDate(t.Fecha)).
		Set("medico_id", t.MedicoID).
		Set("determinaciones", t.Determinaciones).
		Set("nota_interna", t.NotaInterna).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": t.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTurnoNotFound
	}

	return nil
}

// Delete удаляет turno. Блокировка не нужна: освобождение слота
// не нарушает инвариант емкости, а строка cupo не изменяется.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("turnos").
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
		return ErrTurnoNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTurno(row rowScanner) (*domain.Turno, error) {
	var t domain.Turno
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&t.ID,
		&t.AgendaID,
		&t.Fecha,
		&t.PacienteID,
		&t.MedicoID,
		&t.Determinaciones,
		&t.NotaInterna,
		&t.Usuario,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return &t, nil
}
