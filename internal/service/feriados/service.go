package feriados

import (
	"context"
	"errors"
	"fmt"

	"github.com/lab-agenda/turnero-service/internal/domain"
	feriadoRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/feriado"
	"github.com/lab-agenda/turnero-service/internal/service/feriados/models"
)

// Service сервис для работы с feriados.
// Feriado обнуляет емкость даты на всех агендах, существующие turnos
// при этом не отменяются: их разбирает персонал вручную.
type Service struct {
	feriadoRepo FeriadoRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса feriados
func NewService(feriadoRepo FeriadoRepository, logger Logger) *Service {
	return &Service{
		feriadoRepo: feriadoRepo,
		logger:      logger,
	}
}

// List получает список всех feriados
func (s *Service) List(ctx context.Context) (*models.FeriadoListResponse, error) {
	feriados, err := s.feriadoRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainFeriadoList(feriados), nil
}

// Create создает новый feriado
func (s *Service) Create(ctx context.Context, req *models.CreateFeriadoRequest) (*models.FeriadoResponse, error) {
	s.logger.Info("Create: creating feriado fecha=%s", req.Fecha.Format(domain.DateFormat))

	if req.Fecha.IsZero() {
		s.logger.Warn("Create: empty fecha")
		return nil, fmt.Errorf("%w: fecha is required", ErrInvalidInput)
	}

	if req.Descripcion == "" {
		s.logger.Warn("Create: empty descripcion")
		return nil, fmt.Errorf("%w: descripcion is required", ErrInvalidInput)
	}

	created, err := s.feriadoRepo.Create(ctx, req.ToDomain())
	if err != nil {
		if errors.Is(err, feriadoRepo.ErrFeriadoExists) {
			s.logger.Warn("Create: feriado fecha=%s already exists", req.Fecha.Format(domain.DateFormat))
			return nil, ErrFeriadoExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created feriado id=%d", created.ID)
	return models.FromDomainFeriado(created), nil
}

// Delete удаляет feriado, возвращая дате обычную емкость
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting feriado id=%d", id)

	if err := s.feriadoRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, feriadoRepo.ErrFeriadoNotFound) {
			s.logger.Warn("Delete: feriado id=%d not found", id)
			return ErrFeriadoNotFound
		}
		s.logger.Error("Delete: repository error for feriado id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted feriado id=%d", id)
	return nil
}
