package agendas

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lab-agenda/turnero-service/internal/domain"
	agendaRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/agenda"
	"github.com/lab-agenda/turnero-service/internal/service/agendas/models"
)

// Service сервис для работы с агендами и их недельным расписанием
type Service struct {
	agendaRepo AgendaRepository
	weeklyRepo WeeklyRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса агенд
func NewService(agendaRepo AgendaRepository, weeklyRepo WeeklyRepository, logger Logger) *Service {
	return &Service{
		agendaRepo: agendaRepo,
		weeklyRepo: weeklyRepo,
		logger:     logger,
	}
}

// List получает список всех агенд
func (s *Service) List(ctx context.Context) (*models.AgendaListResponse, error) {
	agendas, err := s.agendaRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAgendaList(agendas), nil
}

// GetByID получает агенду по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AgendaResponse, error) {
	a, err := s.agendaRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, agendaRepo.ErrAgendaNotFound) {
			s.logger.Warn("GetByID: agenda id=%d not found", id)
			return nil, ErrAgendaNotFound
		}
		s.logger.Error("GetByID: repository error for agenda id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAgenda(a), nil
}

// GetBySlug получает агенду по slug
func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.AgendaResponse, error) {
	a, err := s.agendaRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, agendaRepo.ErrAgendaNotFound) {
			s.logger.Warn("GetBySlug: agenda slug=%s not found", slug)
			return nil, ErrAgendaNotFound
		}
		s.logger.Error("GetBySlug: repository error for agenda slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetBySlug - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAgenda(a), nil
}

// Create создает новую агенду
func (s *Service) Create(ctx context.Context, req *models.CreateAgendaRequest) (*models.AgendaResponse, error) {
	s.logger.Info("Create: creating agenda slug=%s by user=%s", req.Slug, req.Usuario)

	if req.Name == "" || req.Slug == "" {
		s.logger.Warn("Create: empty name or slug")
		return nil, fmt.Errorf("%w: name and slug are required", ErrInvalidInput)
	}

	created, err := s.agendaRepo.Create(ctx, req.ToDomain())
	if err != nil {
		if errors.Is(err, agendaRepo.ErrAgendaExists) {
			s.logger.Warn("Create: agenda slug=%s already exists", req.Slug)
			return nil, ErrAgendaExists
		}
		s.logger.Error("Create: repository error for agenda slug=%s: %v", req.Slug, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created agenda id=%d", created.ID)
	return models.FromDomainAgenda(created), nil
}

// Delete удаляет агенду. Агенда с существующими turnos не удаляется:
// FK с RESTRICT защищает историю бронирований.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting agenda id=%d", id)

	if err := s.agendaRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, agendaRepo.ErrAgendaNotFound) {
			s.logger.Warn("Delete: agenda id=%d not found", id)
			return ErrAgendaNotFound
		}
		if errors.Is(err, agendaRepo.ErrAgendaInUse) {
			s.logger.Warn("Delete: agenda id=%d has existing turnos", id)
			return ErrAgendaInUse
		}
		s.logger.Error("Delete: repository error for agenda id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted agenda id=%d", id)
	return nil
}

// ListWeekly получает недельное расписание агенды
func (s *Service) ListWeekly(ctx context.Context, agendaID int64) (*models.WeeklyListResponse, error) {
	if err := s.checkAgendaExists(ctx, agendaID); err != nil {
		return nil, err
	}

	entries, err := s.weeklyRepo.ListByAgenda(ctx, agendaID)
	if err != nil {
		s.logger.Error("ListWeekly: repository error for agenda id=%d: %v", agendaID, err)
		return nil, fmt.Errorf("%w: ListWeekly - repository error: %v", ErrInternal, err)
	}

	resp := &models.WeeklyListResponse{
		AgendaID: agendaID,
		Entries:  make([]models.WeeklyResponse, 0, len(entries)),
	}
	for _, w := range entries {
		resp.Entries = append(resp.Entries, *models.FromDomainWeekly(w))
	}

	return resp, nil
}

// UpsertWeekly создает или обновляет запись недельного расписания
func (s *Service) UpsertWeekly(ctx context.Context, req *models.UpsertWeeklyRequest) (*models.WeeklyResponse, error) {
	s.logger.Info("UpsertWeekly: agenda=%d, weekday=%d, capacidad=%d", req.AgendaID, req.Weekday, req.Capacidad)

	if req.Weekday < int(time.Sunday) || req.Weekday > int(time.Saturday) {
		s.logger.Warn("UpsertWeekly: invalid weekday=%d", req.Weekday)
		return nil, fmt.Errorf("%w: weekday must be between 0 and 6", ErrInvalidInput)
	}

	if wd := time.Weekday(req.Weekday); wd == time.Saturday || wd == time.Sunday {
		s.logger.Warn("UpsertWeekly: weekend weekday=%d rejected", req.Weekday)
		return nil, fmt.Errorf("%w: the laboratory does not operate on weekends", ErrInvalidInput)
	}

	if req.Capacidad < 0 || req.Capacidad > domain.MaxCantidadTotal {
		s.logger.Warn("UpsertWeekly: invalid capacidad=%d", req.Capacidad)
		return nil, fmt.Errorf("%w: capacidad must be between 0 and %d", ErrInvalidInput, domain.MaxCantidadTotal)
	}

	if req.ValidFrom != nil && req.ValidUntil != nil && req.ValidFrom.After(*req.ValidUntil) {
		s.logger.Warn("UpsertWeekly: invalid validity range for agenda=%d", req.AgendaID)
		return nil, fmt.Errorf("%w: validFrom must not be after validUntil", ErrInvalidInput)
	}

	if err := s.checkAgendaExists(ctx, req.AgendaID); err != nil {
		return nil, err
	}

	upserted, err := s.weeklyRepo.Upsert(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("UpsertWeekly: repository error for agenda id=%d: %v", req.AgendaID, err)
		return nil, fmt.Errorf("%w: UpsertWeekly - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertWeekly: successfully upserted weekly id=%d for agenda=%d", upserted.ID, req.AgendaID)
	return models.FromDomainWeekly(upserted), nil
}

// checkAgendaExists проверяет существование агенды
func (s *Service) checkAgendaExists(ctx context.Context, agendaID int64) error {
	if _, err := s.agendaRepo.GetByID(ctx, agendaID); err != nil {
		if errors.Is(err, agendaRepo.ErrAgendaNotFound) {
			s.logger.Warn("checkAgendaExists: agenda id=%d not found", agendaID)
			return ErrAgendaNotFound
		}
		s.logger.Error("checkAgendaExists: repository error for agenda id=%d: %v", agendaID, err)
		return fmt.Errorf("%w: checkAgendaExists - repository error: %v", ErrInternal, err)
	}
	return nil
}
