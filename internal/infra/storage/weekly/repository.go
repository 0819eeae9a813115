package weekly

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

// Repository репозиторий для работы с недельным расписанием емкости агенд
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория недельного расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByAgendaAndWeekday получает запись недельного расписания для агенды и дня недели
func (r *Repository) GetByAgendaAndWeekday(ctx context.Context, agendaID int64, weekday time.Weekday) (*domain.WeeklyAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"agenda_id",
		"weekday",
		"capacidad",
		"active",
		"valid_from",
		"valid_until",
		"created_at",
		"updated_at",
	).
		From("weekly_availability").
		Where(squirrel.Eq{"agenda_id": agendaID, "weekday": int(weekday)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByAgendaAndWeekday - build select query: %v", ErrBuildQuery, err)
	}

	w, err := scanAvailability(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAvailabilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAgendaAndWeekday - scan availability: %v", ErrScanRow, err)
	}

	return w, nil
}

// ListByAgenda получает все записи недельного расписания агенды
func (r *Repository) ListByAgenda(ctx context.Context, agendaID int64) ([]*domain.WeeklyAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"agenda_id",
		"weekday",
		"capacidad",
		"active",
		"valid_from",
		"valid_until",
		"created_at",
		"updated_at",
	).
		From("weekly_availability").
		Where(squirrel.Eq{"agenda_id": agendaID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByAgenda - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByAgenda - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	availabilities := make([]*domain.WeeklyAvailability, 0)
	for rows.Next() {
		w, err := scanAvailability(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByAgenda - scan row: %v", ErrScanRow, err)
		}
		availabilities = append(availabilities, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByAgenda - rows error: %v", ErrScanRow, err)
	}

	return availabilities, nil
}

// Upsert создает или перезаписывает запись недельного расписания
// для пары (agenda, weekday)
func (r *Repository) Upsert(ctx context.Context, w *domain.WeeklyAvailability) (*domain.WeeklyAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("weekly_availability").
		Columns(
			"agenda_id",
			"weekday",
			"capacidad",
			"active",
			"valid_from",
			"valid_until",
		).
		Values(
			w.AgendaID,
			int(w.Weekday),
			w.Capacidad,
			w.Active,
			w.ValidFrom,
			w.ValidUntil,
		).
		Suffix(`ON CONFLICT (agenda_id, weekday) DO UPDATE SET
			capacidad = EXCLUDED.capacidad,
			active = EXCLUDED.active,
			valid_from = EXCLUDED.valid_from,
			valid_until = EXCLUDED.valid_until,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&w.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	w.CreatedAt = createdAt.Time
	w.UpdatedAt = updatedAt.Time

	return w, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAvailability(row rowScanner) (*domain.WeeklyAvailability, error) {
	var w domain.WeeklyAvailability
	var weekday int
	var validFrom, validUntil sql.NullTime
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&w.ID,
		&w.AgendaID,
		&weekday,
		&w.Capacidad,
		&w.Active,
		&validFrom,
		&validUntil,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	w.Weekday = time.Weekday(weekday)
	if validFrom.Valid {
		w.ValidFrom = &validFrom.Time
	}
	if validUntil.Valid {
		w.ValidUntil = &validUntil.Time
	}
	w.CreatedAt = createdAt.Time
	w.UpdatedAt = updatedAt.Time

	return &w, nil
}
