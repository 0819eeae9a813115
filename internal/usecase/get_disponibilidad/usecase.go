package get_disponibilidad

import (
	"context"
	"errors"
	"fmt"

	"github.com/lab-agenda/turnero-service/internal/domain"
	agendaRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/agenda"
	feriadoRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/feriado"
)

// UseCase use case получения календаря доступности агенды за период.
//
// Снимок без блокировок: значения могут устареть к моменту бронирования,
// авторитативная проверка выполняется внутри booking-транзакции.
type UseCase struct {
	resolver    CapacityResolver
	agendaRepo  AgendaRepository
	feriadoRepo FeriadoRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	resolver CapacityResolver,
	agendaRepo AgendaRepository,
	feriadoRepo FeriadoRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		resolver:    resolver,
		agendaRepo:  agendaRepo,
		feriadoRepo: feriadoRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения календаря доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDisponibilidad: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование агенды
	if _, err := uc.agendaRepo.GetByID(ctx, req.AgendaID); err != nil {
		if errors.Is(err, agendaRepo.ErrAgendaNotFound) {
			return nil, ErrAgendaNotFound
		}
		uc.logger.Error("GetDisponibilidad: failed to get agenda id=%d: %v", req.AgendaID, err)
		return nil, fmt.Errorf("%w: failed to get agenda: %v", ErrInternal, err)
	}

	desde := domain.NormalizeDate(req.Desde)
	hasta := domain.NormalizeDate(req.Hasta)

	resp := &Response{
		AgendaID: req.AgendaID,
		Days:     make([]Day, 0, int(hasta.Sub(desde).Hours()/24)+1),
	}

	// 3. Собираем снимок по каждому дню периода. Выходные не включаются:
	// лаборатория по ним не работает и емкость всегда нулевая.
	for fecha := desde; !fecha.After(hasta); fecha = fecha.AddDate(0, 0, 1) {
		if domain.IsWeekend(fecha) {
			continue
		}

		disp, err := uc.resolver.Disponibilidad(ctx, req.AgendaID, fecha)
		if err != nil {
			uc.logger.Error("GetDisponibilidad: failed to resolve %s: %v",
				fecha.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to resolve availability: %v", ErrInternal, err)
		}

		day := Day{
			Fecha:       fecha,
			Capacidad:   disp.Capacidad,
			Usados:      disp.Usados,
			Disponibles: disp.Disponibles(),
			Completa:    disp.Completa(),
		}

		f, err := uc.feriadoRepo.GetByFecha(ctx, fecha)
		if err == nil {
			day.Feriado = true
			day.Descripcion = f.Descripcion
		} else if !errors.Is(err, feriadoRepo.ErrFeriadoNotFound) {
			uc.logger.Error("GetDisponibilidad: failed to check feriado %s: %v",
				fecha.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to check feriado: %v", ErrInternal, err)
		}

		resp.Days = append(resp.Days, day)
	}

	return resp, nil
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

	days := int(domain.NormalizeDate(req.Hasta).Sub(domain.NormalizeDate(req.Desde)).Hours()/24) + 1
	if days > domain.MaxCalendarRangeDays {
		return fmt.Errorf("%w: range exceeds %d days", ErrInvalidInput, domain.MaxCalendarRangeDays)
	}

	return nil
}
