package provision_cupos

import (
	"context"
	"errors"
	"fmt"

	"github.com/lab-agenda/turnero-service/internal/domain"
	agendaRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/agenda"
	cupoRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/cupo"
)

// UseCase use case массового создания/перезаписи cupos за период.
//
// Для каждой подходящей даты создает cupo с указанным cantidad_total или
// деструктивно перезаписывает существующий (не аддитивно). Повторный вызов
// с теми же аргументами дает тот же набор строк: второй проход обновляет
// на месте и дубликатов не создает.
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

// Execute выполняет use case массового создания cupos
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Summary, error) {
	uc.logger.Info("ProvisionCupos: agenda=%d, desde=%s, hasta=%s, cantidad=%d",
		req.AgendaID, req.Desde.Format(domain.DateFormat), req.Hasta.Format(domain.DateFormat), req.CantidadTotal)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ProvisionCupos: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование агенды
	if _, err := uc.agendaRepo.GetByID(ctx, req.AgendaID); err != nil {
		if errors.Is(err, agendaRepo.ErrAgendaNotFound) {
			uc.logger.Warn("ProvisionCupos: agenda id=%d not found", req.AgendaID)
			return nil, ErrAgendaNotFound
		}
		uc.logger.Error("ProvisionCupos: failed to get agenda id=%d: %v", req.AgendaID, err)
		return nil, fmt.Errorf("%w: failed to get agenda: %v", ErrInternal, err)
	}

	summary := &Summary{}

	// 3. Обходим период в одной транзакции: операция атомарна целиком
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		desde := domain.NormalizeDate(req.Desde)
		hasta := domain.NormalizeDate(req.Hasta)

		for fecha := desde; !fecha.After(hasta); fecha = fecha.AddDate(0, 0, 1) {
			// Выходные пропускаются всегда: лаборатория по ним не работает
			if domain.IsWeekend(fecha) {
				continue
			}
			if req.Weekday != nil && fecha.Weekday() != *req.Weekday {
				continue
			}

			existing, err := uc.cupoRepo.GetByAgendaAndFecha(txCtx, req.AgendaID, fecha)
			switch {
			case err == nil:
				// Деструктивная перезапись cantidad_total
				if err := uc.cupoRepo.UpdateCantidad(txCtx, existing.ID, req.CantidadTotal); err != nil {
					uc.logger.Error("ProvisionCupos: failed to update cupo id=%d: %v", existing.ID, err)
					return fmt.Errorf("%w: failed to update cupo: %v", ErrInternal, err)
				}
				summary.Actualizados++

			case errors.Is(err, cupoRepo.ErrCupoNotFound):
				if _, err := uc.cupoRepo.Create(txCtx, &domain.Cupo{
					AgendaID:      req.AgendaID,
					Fecha:         fecha,
					CantidadTotal: req.CantidadTotal,
					Usuario:       req.Usuario,
				}); err != nil {
					uc.logger.Error("ProvisionCupos: failed to create cupo for %s: %v",
						fecha.Format(domain.DateFormat), err)
					return fmt.Errorf("%w: failed to create cupo: %v", ErrInternal, err)
				}
				summary.Creados++

			default:
				uc.logger.Error("ProvisionCupos: failed to get cupo for %s: %v",
					fecha.Format(domain.DateFormat), err)
				return fmt.Errorf("%w: failed to get cupo: %v", ErrInternal, err)
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ProvisionCupos: completed, %d creados, %d actualizados",
		summary.Creados, summary.Actualizados)

	return summary, nil
}
