// Package capacidad определяет авторитативную емкость агенды на дату
// и вычисляет производную доступность.
package capacidad

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lab-agenda/turnero-service/internal/domain"
	cupoRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/cupo"
	feriadoRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/feriado"
	weeklyRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/weekly"
)

// Resolver вычисляет емкость и доступность для пары (agenda, fecha).
//
// Приоритет источников емкости строгий:
//  1. feriado на дату -> 0, остальные источники не проверяются;
//  2. явный cupo -> его cantidad_total, даже если недельное расписание дало бы больше;
//  3. активная запись недельного расписания, в чей диапазон действия попадает дата;
//  4. иначе 0.
//
// Побочных эффектов нет. Репозитории берут транзакцию из context, поэтому
// один и тот же резолвер обслуживает и предварительные проверки для UI,
// и авторитативную перепроверку внутри booking-транзакции.
type Resolver struct {
	cupoRepo    CupoRepository
	weeklyRepo  WeeklyRepository
	feriadoRepo FeriadoRepository
	turnoRepo   TurnoRepository
}

// NewResolver создает новый резолвер емкости
func NewResolver(
	cupoRepo CupoRepository,
	weeklyRepo WeeklyRepository,
	feriadoRepo FeriadoRepository,
	turnoRepo TurnoRepository,
) *Resolver {
	return &Resolver{
		cupoRepo:    cupoRepo,
		weeklyRepo:  weeklyRepo,
		feriadoRepo: feriadoRepo,
		turnoRepo:   turnoRepo,
	}
}

// ResolveCapacity возвращает авторитативную емкость пары (agenda, fecha)
func (r *Resolver) ResolveCapacity(ctx context.Context, agendaID int64, fecha time.Time) (int, error) {
	fecha = domain.NormalizeDate(fecha)

	// 1. Feriado обнуляет емкость независимо от любой другой конфигурации
	_, err := r.feriadoRepo.GetByFecha(ctx, fecha)
	if err == nil {
		return 0, nil
	}
	if !errors.Is(err, feriadoRepo.ErrFeriadoNotFound) {
		return 0, fmt.Errorf("%w: ResolveCapacity - check feriado: %v", ErrInternal, err)
	}

	// 2. Явный cupo всегда побеждает вычисленное значение
	c, err := r.cupoRepo.GetByAgendaAndFecha(ctx, agendaID, fecha)
	if err == nil {
		return c.CantidadTotal, nil
	}
	if !errors.Is(err, cupoRepo.ErrCupoNotFound) {
		return 0, fmt.Errorf("%w: ResolveCapacity - get cupo: %v", ErrInternal, err)
	}

	// 3. Недельное расписание, если запись активна и дата в диапазоне действия
	w, err := r.weeklyRepo.GetByAgendaAndWeekday(ctx, agendaID, fecha.Weekday())
	if err != nil {
		if errors.Is(err, weeklyRepo.ErrAvailabilityNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: ResolveCapacity - get weekly availability: %v", ErrInternal, err)
	}

	if !w.AppliesTo(fecha) {
		return 0, nil
	}

	return w.Capacidad, nil
}

// CountUsados возвращает количество занятых слотов пары (agenda, fecha).
// Всегда COUNT существующих turnos, без кеширования счетчика: пересчет
// не может разойтись с истинным значением.
func (r *Resolver) CountUsados(ctx context.Context, agendaID int64, fecha time.Time) (int, error) {
	usados, err := r.turnoRepo.CountByAgendaAndFecha(ctx, agendaID, fecha)
	if err != nil {
		return 0, fmt.Errorf("%w: CountUsados - count turnos: %v", ErrInternal, err)
	}
	return usados, nil
}

// Disponibilidad возвращает снимок емкость/занято/свободно для пары (agenda, fecha).
// Без блокировок: допустимо устаревшее значение для отображения,
// авторитативная проверка выполняется в booking-транзакции.
func (r *Resolver) Disponibilidad(ctx context.Context, agendaID int64, fecha time.Time) (*domain.Disponibilidad, error) {
	capacidad, err := r.ResolveCapacity(ctx, agendaID, fecha)
	if err != nil {
		return nil, err
	}

	usados, err := r.CountUsados(ctx, agendaID, fecha)
	if err != nil {
		return nil, err
	}

	return &domain.Disponibilidad{
		AgendaID:  agendaID,
		Fecha:     domain.NormalizeDate(fecha),
		Capacidad: capacidad,
		Usados:    usados,
	}, nil
}
