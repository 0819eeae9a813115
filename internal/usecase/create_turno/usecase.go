package create_turno

import (
	"context"
	"errors"
	"fmt"

	"github.com/lab-agenda/turnero-service/internal/domain"
	agendaRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/agenda"
	cupoRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/cupo"
	feriadoRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/feriado"
	medicoRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/medico"
)

// UseCase use case создания turno.
//
// Последовательность check-then-insert выполняется целиком внутри одной
// транзакции, и первым шагом в ней захватывается блокировка пары
// (agenda, fecha). Из двух одновременных запросов на последний свободный
// слот второй ждет commit первого, перечитывает емкость и занятость уже
// по зафиксированному состоянию и корректно получает ErrFechaCompleta.
type UseCase struct {
	turnoRepo    TurnoRepository
	cupoRepo     CupoRepository
	feriadoRepo  FeriadoRepository
	agendaRepo   AgendaRepository
	pacienteRepo PacienteRepository
	medicoRepo   MedicoRepository
	resolver     CapacityResolver
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	turnoRepo TurnoRepository,
	cupoRepo CupoRepository,
	feriadoRepo FeriadoRepository,
	agendaRepo AgendaRepository,
	pacienteRepo PacienteRepository,
	medicoRepo MedicoRepository,
	resolver CapacityResolver,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		turnoRepo:    turnoRepo,
		cupoRepo:     cupoRepo,
		feriadoRepo:  feriadoRepo,
		agendaRepo:   agendaRepo,
		pacienteRepo: pacienteRepo,
		medicoRepo:   medicoRepo,
		resolver:     resolver,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case создания turno
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateTurno: agenda=%d, fecha=%s, documento=%s, usuario=%s",
		req.AgendaID, req.Fecha.Format(domain.DateFormat), req.Documento, req.Usuario)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateTurno: validation failed: %v", err)
		return nil, err
	}

	fecha := domain.NormalizeDate(req.Fecha)

	// 2. Проверяем существование агенды (вне транзакции: справочные данные)
	if _, err := uc.agendaRepo.GetByID(ctx, req.AgendaID); err != nil {
		if errors.Is(err, agendaRepo.ErrAgendaNotFound) {
			uc.logger.Warn("CreateTurno: agenda id=%d not found", req.AgendaID)
			return nil, ErrAgendaNotFound
		}
		uc.logger.Error("CreateTurno: failed to get agenda id=%d: %v", req.AgendaID, err)
		return nil, fmt.Errorf("%w: failed to get agenda: %v", ErrInternal, err)
	}

	var result *Response

	// 3. Check-then-insert внутри одной транзакции под блокировкой пары
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 3.1. Захватываем блокировку (agenda, fecha).
		// Advisory lock покрывает и случай без строки cupo, когда емкость
		// берется из недельного расписания и блокировать FOR UPDATE нечего.
		if err := uc.cupoRepo.LockAgendaFecha(txCtx, req.AgendaID, fecha); err != nil {
			if errors.Is(err, cupoRepo.ErrLockTimeout) {
				uc.logger.Warn("CreateTurno: lock timeout for agenda=%d fecha=%s",
					req.AgendaID, fecha.Format(domain.DateFormat))
				return ErrLockTimeout
			}
			uc.logger.Error("CreateTurno: failed to lock agenda=%d fecha=%s: %v",
				req.AgendaID, fecha.Format(domain.DateFormat), err)
			return fmt.Errorf("%w: failed to lock agenda/fecha: %v", ErrInternal, err)
		}

		// 3.2. Feriado блокирует бронирование раньше любых проверок емкости
		f, err := uc.feriadoRepo.GetByFecha(txCtx, fecha)
		if err == nil {
			uc.logger.Warn("CreateTurno: fecha %s is feriado (%s)",
				fecha.Format(domain.DateFormat), f.Descripcion)
			return fmt.Errorf("%w: %s", ErrFeriado, f.Descripcion)
		}
		if !errors.Is(err, feriadoRepo.ErrFeriadoNotFound) {
			uc.logger.Error("CreateTurno: failed to check feriado: %v", err)
			return fmt.Errorf("%w: failed to check feriado: %v", ErrInternal, err)
		}

		// 3.3. Авторитативная емкость под блокировкой
		capacidad, err := uc.resolver.ResolveCapacity(txCtx, req.AgendaID, fecha)
		if err != nil {
			uc.logger.Error("CreateTurno: failed to resolve capacity: %v", err)
			return fmt.Errorf("%w: failed to resolve capacity: %v", ErrInternal, err)
		}

		if capacidad <= 0 {
			uc.logger.Warn("CreateTurno: no capacity configured for agenda=%d fecha=%s",
				req.AgendaID, fecha.Format(domain.DateFormat))
			return ErrSinCupo
		}

		// 3.4. Пересчет занятости под блокировкой
		usados, err := uc.resolver.CountUsados(txCtx, req.AgendaID, fecha)
		if err != nil {
			uc.logger.Error("CreateTurno: failed to count usados: %v", err)
			return fmt.Errorf("%w: failed to count usados: %v", ErrInternal, err)
		}

		if usados >= capacidad {
			uc.logger.Warn("CreateTurno: fecha completa, %d/%d slots taken", usados, capacidad)
			return ErrFechaCompleta
		}

		uc.logger.Info("CreateTurno: slot available, %d/%d slots taken", usados, capacidad)

		// 3.5. Upsert пациента по documento
		paciente, err := uc.pacienteRepo.UpsertByDocumento(txCtx, &domain.Paciente{
			Documento:       req.Documento,
			Nombre:          req.Nombre,
			Apellido:        req.Apellido,
			FechaNacimiento: req.FechaNacimiento,
			Sexo:            req.Sexo,
			Telefono:        req.Telefono,
			Email:           req.Email,
			Observaciones:   req.Observaciones,
		})
		if err != nil {
			uc.logger.Error("CreateTurno: failed to upsert paciente documento=%s: %v", req.Documento, err)
			return fmt.Errorf("%w: failed to upsert paciente: %v", ErrInternal, err)
		}

		// 3.6. Необязательный медик: отсутствие не является ошибкой
		var medicoID *int64
		if req.MedicoNombre != "" {
			m, err := uc.medicoRepo.FindByNombre(txCtx, req.MedicoNombre)
			switch {
			case err == nil:
				medicoID = &m.ID
			case errors.Is(err, medicoRepo.ErrMedicoNotFound):
				uc.logger.Warn("CreateTurno: medico %q not found, turno sin medico", req.MedicoNombre)
			default:
				uc.logger.Error("CreateTurno: failed to find medico %q: %v", req.MedicoNombre, err)
				return fmt.Errorf("%w: failed to find medico: %v", ErrInternal, err)
			}
		}

		// 3.7. Создаем turno
		created, err := uc.turnoRepo.Create(txCtx, &domain.Turno{
			AgendaID:        req.AgendaID,
			Fecha:           fecha,
			PacienteID:      paciente.ID,
			MedicoID:        medicoID,
			Determinaciones: req.Determinaciones,
			NotaInterna:     req.NotaInterna,
			Usuario:         req.Usuario,
		})
		if err != nil {
			uc.logger.Error("CreateTurno: failed to create turno: %v", err)
			return fmt.Errorf("%w: failed to create turno: %v", ErrInternal, err)
		}

		result = &Response{
			ID:              created.ID,
			AgendaID:        created.AgendaID,
			Fecha:           created.Fecha,
			PacienteID:      created.PacienteID,
			MedicoID:        created.MedicoID,
			Determinaciones: created.Determinaciones,
			NotaInterna:     created.NotaInterna,
			Usuario:         created.Usuario,
			Capacidad:       capacidad,
			Usados:          usados + 1,
			Disponibles:     maxInt(capacidad-usados-1, 0),
			CreatedAt:       created.CreatedAt,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateTurno: successfully created turno id=%d, %d/%d slots taken",
		result.ID, result.Usados, result.Capacidad)

	return result, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
