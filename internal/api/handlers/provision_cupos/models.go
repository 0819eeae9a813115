package provision_cupos

import (
	"time"

	"github.com/lab-agenda/turnero-service/internal/domain"
	provisionCupos "github.com/lab-agenda/turnero-service/internal/usecase/provision_cupos"
)

// ProvisionCuposRequest HTTP request model
type ProvisionCuposRequest struct {
	Desde         string `json:"desde"` // "2026-03-01"
	Hasta         string `json:"hasta"` // "2026-03-31"
	CantidadTotal int    `json:"cantidadTotal"`
	// Weekday ограничивает генерацию одним днем недели: 1=lunes ... 5=viernes
	Weekday *int `json:"weekday,omitempty"`
}

// SummaryResponse HTTP response model
type SummaryResponse struct {
	Creados      int `json:"creados"`
	Actualizados int `json:"actualizados"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ProvisionCuposRequest) ToUseCaseRequest(agendaID int64, usuario string) (*provisionCupos.Request, error) {
	desde, err := time.Parse(domain.DateFormat, r.Desde)
	if err != nil {
		return nil, err
	}

	hasta, err := time.Parse(domain.DateFormat, r.Hasta)
	if err != nil {
		return nil, err
	}

	req := &provisionCupos.Request{
		AgendaID:      agendaID,
		Desde:         desde,
		Hasta:         hasta,
		CantidadTotal: r.CantidadTotal,
		Usuario:       usuario,
	}

	if r.Weekday != nil {
		wd := time.Weekday(*r.Weekday)
		req.Weekday = &wd
	}

	return req, nil
}

// FromUseCaseSummary конвертирует итог use case в HTTP response
func FromUseCaseSummary(s *provisionCupos.Summary) *SummaryResponse {
	return &SummaryResponse{
		Creados:      s.Creados,
		Actualizados: s.Actualizados,
	}
}
