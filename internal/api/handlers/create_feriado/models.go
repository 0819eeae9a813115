package create_feriado

import (
	"time"

	"github.com/lab-agenda/turnero-service/internal/domain"
	"github.com/lab-agenda/turnero-service/internal/service/feriados/models"
)

// CreateFeriadoRequest HTTP request model
type CreateFeriadoRequest struct {
	Fecha       string `json:"fecha"` // "2026-05-01"
	Descripcion string `json:"descripcion"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateFeriadoRequest) ToServiceRequest() (*models.CreateFeriadoRequest, error) {
	fecha, err := time.Parse(domain.DateFormat, r.Fecha)
	if err != nil {
		return nil, err
	}

	return &models.CreateFeriadoRequest{
		Fecha:       fecha,
		Descripcion: r.Descripcion,
	}, nil
}
