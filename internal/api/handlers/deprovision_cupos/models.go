package deprovision_cupos

import (
	"time"

	"github.com/lab-agenda/turnero-service/internal/domain"
	deprovisionCupos "github.com/lab-agenda/turnero-service/internal/usecase/deprovision_cupos"
)

// DeprovisionCuposRequest HTTP request model
type DeprovisionCuposRequest struct {
	Desde string `json:"desde"` // "2026-03-01"
	Hasta string `json:"hasta"` // "2026-03-31"
	// Cantidad задает величину уменьшения; без него cupos удаляются целиком
	Cantidad *int `json:"cantidad,omitempty"`
	// Weekday ограничивает операцию одним днем недели: 1=lunes ... 5=viernes
	Weekday *int `json:"weekday,omitempty"`
}

// SummaryResponse HTTP response model
type SummaryResponse struct {
	Eliminados int `json:"eliminados"`
	Reducidos  int `json:"reducidos"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *DeprovisionCuposRequest) ToUseCaseRequest(agendaID int64) (*deprovisionCupos.Request, error) {
	desde, err := time.Parse(domain.DateFormat, r.Desde)
	if err != nil {
		return nil, err
	}

	hasta, err := time.Parse(domain.DateFormat, r.Hasta)
	if err != nil {
		return nil, err
	}

	req := &deprovisionCupos.Request{
		AgendaID: agendaID,
		Desde:    desde,
		Hasta:    hasta,
		Cantidad: r.Cantidad,
	}

	if r.Weekday != nil {
		wd := time.Weekday(*r.Weekday)
		req.Weekday = &wd
	}

	return req, nil
}

// FromUseCaseSummary конвертирует итог use case в HTTP response
func FromUseCaseSummary(s *deprovisionCupos.Summary) *SummaryResponse {
	return &SummaryResponse{
		Eliminados: s.Eliminados,
		Reducidos:  s.Reducidos,
	}
}
