package deprovision_cupos

import (
	"context"
	"errors"
	"fmt"

	"github.com/lab-agenda/turnero-service/internal/domain"
	agendaRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/agenda"
	cupoRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/cupo"
)

// UseCase use case массового удаления/уменьшения cupos за период.
//
// Turnos никогда не затрагиваются: уменьшение емкости ниже занятости
// допустимо и означает, что день отображается как заполненный
// (disponibles не опускается ниже нуля).
type UseCase struct {
	cupoRepo   CupoRepository
	agendaRepo AgendaRepository
	txManager  TransactionManager
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	cupoRepo CupoRepository,
	agendaRepo AgendaRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		cupoRepo:   cupoRepo,
		agendaRepo: agendaRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute выполняет use case массового удаления/уменьшения cupos
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Summary, error) {
	uc.logger.Info("DeprovisionCupos: agenda=%d, desde=%s, hasta=%s, cantidad=%v",
		req.AgendaID, req.Desde.Format(domain.DateFormat), req.Hasta.Format(domain.DateFormat), req.Cantidad)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("DeprovisionCupos: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование агенды
	if _, err := uc.agendaRepo.GetByID(ctx, req.AgendaID); err != nil {
		if errors.Is(err, agendaRepo.ErrAgendaNotFound) {
			uc.logger.Warn("DeprovisionCupos: agenda id=%d not found", req.AgendaID)
			return nil, ErrAgendaNotFound
		}
		uc.logger.Error("DeprovisionCupos: failed to get agenda id=%d: %v", req.AgendaID, err)
		return nil, fmt.Errorf("%w: failed to get agenda: %v", ErrInternal, err)
	}

	summary := &Summary{}

	// 3. Обходим период в одной транзакции.
	// GetByAgendaAndFecha внутри транзакции берет строку FOR UPDATE,
	// поэтому уменьшение не гонится с параллельным provision.
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		desde := domain.NormalizeDate(req.Desde)
		hasta := domain.NormalizeDate(req.Hasta)

		for fecha := desde; !fecha.After(hasta); fecha = fecha.AddDate(0, 0, 1) {
			if domain.IsWeekend(fecha) {
				continue
			}
			if req.Weekday != nil && fecha.Weekday() != *req.Weekday {
				continue
			}

			existing, err := uc.cupoRepo.GetByAgendaAndFecha(txCtx, req.AgendaID, fecha)
			if errors.Is(err, cupoRepo.ErrCupoNotFound) {
				continue
			}
			if err != nil {
				uc.logger.Error("DeprovisionCupos: failed to get cupo for %s: %v",
					fecha.Format(domain.DateFormat), err)
				return fmt.Errorf("%w: failed to get cupo: %v", ErrInternal, err)
			}

			if req.Cantidad == nil {
				// Без cantidad - удаление целиком
				if err := uc.cupoRepo.Delete(txCtx, existing.ID); err != nil {
					uc.logger.Error("DeprovisionCupos: failed to delete cupo id=%d: %v", existing.ID, err)
					return fmt.Errorf("%w: failed to delete cupo: %v", ErrInternal, err)
				}
				summary.Eliminados++
				continue
			}

			nuevaCantidad := existing.CantidadTotal - *req.Cantidad
			if nuevaCantidad <= 0 {
				if err := uc.cupoRepo.Delete(txCtx, existing.ID); err != nil {
					uc.logger.Error("DeprovisionCupos: failed to delete cupo id=%d: %v", existing.ID, err)
					return fmt.Errorf("%w: failed to delete cupo: %v", ErrInternal, err)
				}
				summary.Eliminados++
			} else {
				if err := uc.cupoRepo.UpdateCantidad(txCtx, existing.ID, nuevaCantidad); err != nil {
					uc.logger.Error("DeprovisionCupos: failed to reduce cupo id=%d: %v", existing.ID, err)
					return fmt.Errorf("%w: failed to reduce cupo: %v", ErrInternal, err)
				}
				summary.Reducidos++
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("DeprovisionCupos: completed, %d eliminados, %d reducidos",
		summary.Eliminados, summary.Reducidos)

	return summary, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AgendaID <= 0 {
		return fmt.Errorf("%w: agendaID must be positive", ErrInvalidInput)
	}

	if req.Desde.IsZero() || req.Hasta.IsZero() {
		return fmt.Errorf("%w: desde and hasta are required", ErrInvalidInput)
	}

	if req.Desde.After(req.Hasta) {
		return fmt.Errorf("%w: desde must not be after hasta", ErrInvalidInput)
	}

	if req.Cantidad != nil && *req.Cantidad <= 0 {
		return fmt.Errorf("%w: cantidad must be positive when present", ErrInvalidInput)
	}

	return nil
}
