package update_turno

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lab-agenda/turnero-service/internal/domain"
	agendaRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/agenda"
	cupoRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/cupo"
	feriadoRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/feriado"
	medicoRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/medico"
	turnoRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/turno"
)

// UseCase use case обновления turno.
//
// Перенос на другую пару (agenda, fecha) логически эквивалентен
// delete+rebook и выполняется через полную booking-транзакцию против
// целевой пары: блокировка, проверка feriado, емкости и занятости.
// Обновление без переноса блокировки не требует: освобождения слота
// не происходит и инвариант емкости не затрагивается.
type UseCase struct {
	turnoRepo   TurnoRepository
	cupoRepo    CupoRepository
	feriadoRepo FeriadoRepository
	agendaRepo  AgendaRepository
	medicoRepo  MedicoRepository
	resolver    CapacityResolver
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	turnoRepo TurnoRepository,
	cupoRepo CupoRepository,
	feriadoRepo FeriadoRepository,
	agendaRepo AgendaRepository,
	medicoRepo MedicoRepository,
	resolver CapacityResolver,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		turnoRepo:   turnoRepo,
		cupoRepo:    cupoRepo,
		feriadoRepo: feriadoRepo,
		agendaRepo:  agendaRepo,
		medicoRepo:  medicoRepo,
		resolver:    resolver,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case обновления turno
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateTurno: turno=%d", req.TurnoID)

	if req.TurnoID <= 0 {
		return nil, fmt.Errorf("%w: turnoID must be positive", ErrInvalidInput)
	}

	// 1. Получаем существующий turno
	current, err := uc.turnoRepo.GetByID(ctx, req.TurnoID)
	if err != nil {
		if errors.Is(err, turnoRepo.ErrTurnoNotFound) {
			uc.logger.Warn("UpdateTurno: turno id=%d not found", req.TurnoID)
			return nil, ErrTurnoNotFound
		}
		uc.logger.Error("UpdateTurno: failed to get turno id=%d: %v", req.TurnoID, err)
		return nil, fmt.Errorf("%w: failed to get turno: %v", ErrInternal, err)
	}

	// 2. Вычисляем целевую пару (agenda, fecha)
	targetAgendaID := current.AgendaID
	if req.AgendaID != nil {
		targetAgendaID = *req.AgendaID
	}
	targetFecha := current.Fecha
	if req.Fecha != nil {
		targetFecha = domain.NormalizeDate(*req.Fecha)
		if domain.IsWeekend(targetFecha) {
			return nil, fmt.Errorf("%w: the laboratory does not operate on weekends", ErrInvalidInput)
		}
	}

	if req.AgendaID != nil && targetAgendaID != current.AgendaID {
		if _, err := uc.agendaRepo.GetByID(ctx, targetAgendaID); err != nil {
			if errors.Is(err, agendaRepo.ErrAgendaNotFound) {
				uc.logger.Warn("UpdateTurno: target agenda id=%d not found", targetAgendaID)
				return nil, ErrAgendaNotFound
			}
			uc.logger.Error("UpdateTurno: failed to get agenda id=%d: %v", targetAgendaID, err)
			return nil, fmt.Errorf("%w: failed to get agenda: %v", ErrInternal, err)
		}
	}

	rescheduled := current.Reschedules(targetAgendaID, targetFecha)

	var result *Response

	apply := func(txCtx context.Context) error {
		// 3. Для переноса - полная проверка целевой пары под блокировкой
		if rescheduled {
			if err := uc.checkTarget(txCtx, targetAgendaID, targetFecha); err != nil {
				return err
			}
		}

		// 4. Применяем изменения
		updated := *current
		updated.AgendaID = targetAgendaID
		updated.Fecha = targetFecha

		if req.Determinaciones != nil {
			updated.Determinaciones = *req.Determinaciones
		}
		if req.NotaInterna != nil {
			updated.NotaInterna = *req.NotaInterna
		}

		if req.MedicoNombre != nil {
			if *req.MedicoNombre == "" {
				updated.MedicoID = nil
			} else {
				m, err := uc.medicoRepo.FindByNombre(txCtx, *req.MedicoNombre)
				switch {
				case err == nil:
					updated.MedicoID = &m.ID
				case errors.Is(err, medicoRepo.ErrMedicoNotFound):
					uc.logger.Warn("UpdateTurno: medico %q not found, turno sin medico", *req.MedicoNombre)
					updated.MedicoID = nil
				default:
					uc.logger.Error("UpdateTurno: failed to find medico %q: %v", *req.MedicoNombre, err)
					return fmt.Errorf("%w: failed to find medico: %v", ErrInternal, err)
				}
			}
		}

		if err := uc.turnoRepo.Update(txCtx, &updated); err != nil {
			if errors.Is(err, turnoRepo.ErrTurnoNotFound) {
				return ErrTurnoNotFound
			}
			uc.logger.Error("UpdateTurno: failed to update turno id=%d: %v", req.TurnoID, err)
			return fmt.Errorf("%w: failed to update turno: %v", ErrInternal, err)
		}

		result = &Response{
			ID:              updated.ID,
			AgendaID:        updated.AgendaID,
			Fecha:           updated.Fecha,
			PacienteID:      updated.PacienteID,
			MedicoID:        updated.MedicoID,
			Determinaciones: updated.Determinaciones,
			NotaInterna:     updated.NotaInterna,
			Rescheduled:     rescheduled,
			UpdatedAt:       updated.UpdatedAt,
		}
		return nil
	}

	// Перенос выполняется в транзакции, простое редактирование - напрямую
	if rescheduled {
		err = uc.txManager.Do(ctx, apply)
	} else {
		err = apply(ctx)
	}

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateTurno: successfully updated turno id=%d (rescheduled=%t)",
		req.TurnoID, rescheduled)

	return result, nil
}

// checkTarget выполняет проверки booking-транзакции против целевой пары
func (uc *UseCase) checkTarget(txCtx context.Context, agendaID int64, fecha time.Time) error {
	if err := uc.cupoRepo.LockAgendaFecha(txCtx, agendaID, fecha); err != nil {
		if errors.Is(err, cupoRepo.ErrLockTimeout) {
			return ErrLockTimeout
		}
		return fmt.Errorf("%w: failed to lock agenda/fecha: %v", ErrInternal, err)
	}

	f, err := uc.feriadoRepo.GetByFecha(txCtx, fecha)
	if err == nil {
		return fmt.Errorf("%w: %s", ErrFeriado, f.Descripcion)
	}
	if !errors.Is(err, feriadoRepo.ErrFeriadoNotFound) {
		return fmt.Errorf("%w: failed to check feriado: %v", ErrInternal, err)
	}

	capacidad, err := uc.resolver.ResolveCapacity(txCtx, agendaID, fecha)
	if err != nil {
		return fmt.Errorf("%w: failed to resolve capacity: %v", ErrInternal, err)
	}
	if capacidad <= 0 {
		return ErrSinCupo
	}

	usados, err := uc.resolver.CountUsados(txCtx, agendaID, fecha)
	if err != nil {
		return fmt.Errorf("%w: failed to count usados: %v", ErrInternal, err)
	}
	if usados >= capacidad {
		return ErrFechaCompleta
	}

	return nil
}
