package turnos

import (
	"context"
	"errors"
	"fmt"

	"github.com/lab-agenda/turnero-service/internal/domain"
	agendaRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/agenda"
	medicoRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/medico"
	pacienteRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/paciente"
	turnoRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/turno"
	"github.com/lab-agenda/turnero-service/internal/service/turnos/models"
)

// Service сервис для работы с turnos: чтение, списки и удаление.
// Создание и перенос проходят через booking-транзакцию в usecase слое.
type Service struct {
	turnoRepo    TurnoRepository
	pacienteRepo PacienteRepository
	medicoRepo   MedicoRepository
	agendaRepo   AgendaRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса turnos
func NewService(
	turnoRepo TurnoRepository,
	pacienteRepo PacienteRepository,
	medicoRepo MedicoRepository,
	agendaRepo AgendaRepository,
	logger Logger,
) *Service {
	return &Service{
		turnoRepo:    turnoRepo,
		pacienteRepo: pacienteRepo,
		medicoRepo:   medicoRepo,
		agendaRepo:   agendaRepo,
		logger:       logger,
	}
}

// GetByID получает turno по ID вместе с данными пациента и медика
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TurnoResponse, error) {
	s.logger.Info("GetByID: fetching turno id=%d", id)

	t, err := s.turnoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, turnoRepo.ErrTurnoNotFound) {
			s.logger.Warn("GetByID: turno id=%d not found", id)
			return nil, ErrTurnoNotFound
		}
		s.logger.Error("GetByID: repository error for turno id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return s.toResponse(ctx, t)
}

// List получает список turnos с фильтрацией по агенде, периоду и документу
func (s *Service) List(ctx context.Context, req *models.ListTurnosRequest) (*models.TurnoListResponse, error) {
	s.logger.Info("List: fetching turnos, agenda=%v, documento=%v", req.AgendaID, req.Documento)

	if req.FechaFrom != nil && req.FechaTo != nil && req.FechaFrom.After(*req.FechaTo) {
		s.logger.Warn("List: invalid period for turnos listing")
		return nil, fmt.Errorf("%w: fechaFrom must not be after fechaTo", ErrInvalidInput)
	}

	if req.AgendaID != nil {
		if _, err := s.agendaRepo.GetByID(ctx, *req.AgendaID); err != nil {
			if errors.Is(err, agendaRepo.ErrAgendaNotFound) {
				s.logger.Warn("List: agenda id=%d not found", *req.AgendaID)
				return nil, ErrAgendaNotFound
			}
			s.logger.Error("List: failed to get agenda id=%d: %v", *req.AgendaID, err)
			return nil, fmt.Errorf("%w: List - failed to get agenda: %v", ErrInternal, err)
		}
	}

	turnos, err := s.turnoRepo.ListByFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.TurnoListResponse{Turnos: make([]models.TurnoResponse, 0, len(turnos))}
	for _, t := range turnos {
		item, err := s.toResponse(ctx, t)
		if err != nil {
			return nil, err
		}
		resp.Turnos = append(resp.Turnos, *item)
	}

	s.logger.Info("List: successfully fetched %d turnos", len(resp.Turnos))
	return resp, nil
}

// Delete удаляет turno, освобождая слот. Строка cupo не затрагивается:
// занятость всегда пересчитывается COUNT-ом существующих turnos.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting turno id=%d", id)

	if err := s.turnoRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, turnoRepo.ErrTurnoNotFound) {
			s.logger.Warn("Delete: turno id=%d not found", id)
			return ErrTurnoNotFound
		}
		s.logger.Error("Delete: repository error for turno id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted turno id=%d", id)
	return nil
}

// toResponse собирает DTO turno с данными пациента и медика
func (s *Service) toResponse(ctx context.Context, t *domain.Turno) (*models.TurnoResponse, error) {
	p, err := s.pacienteRepo.GetByID(ctx, t.PacienteID)
	if err != nil {
		if !errors.Is(err, pacienteRepo.ErrPacienteNotFound) {
			s.logger.Error("toResponse: failed to get paciente id=%d: %v", t.PacienteID, err)
			return nil, fmt.Errorf("%w: toResponse - failed to get paciente: %v", ErrInternal, err)
		}
		p = nil
	}

	var m *domain.Medico
	if t.MedicoID != nil {
		m, err = s.medicoRepo.GetByID(ctx, *t.MedicoID)
		if err != nil {
			if !errors.Is(err, medicoRepo.ErrMedicoNotFound) {
				s.logger.Error("toResponse: failed to get medico id=%d: %v", *t.MedicoID, err)
				return nil, fmt.Errorf("%w: toResponse - failed to get medico: %v", ErrInternal, err)
			}
			m = nil
		}
	}

	return models.FromDomainTurno(t, p, m), nil
}
