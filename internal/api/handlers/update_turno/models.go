package update_turno

import (
	"time"

	"github.com/lab-agenda/turnero-service/internal/domain"
	updateTurno "github.com/lab-agenda/turnero-service/internal/usecase/update_turno"
)

// UpdateTurnoRequest HTTP request model. nil поля остаются без изменений.
type UpdateTurnoRequest struct {
	AgendaID        *int64  `json:"agendaId,omitempty"`
	Fecha           *string `json:"fecha,omitempty"` // "2026-03-02"
	MedicoNombre    *string `json:"medicoNombre,omitempty"`
	Determinaciones *string `json:"determinaciones,omitempty"`
	NotaInterna     *string `json:"notaInterna,omitempty"`
}

// TurnoResponse HTTP response model
type TurnoResponse struct {
	ID         int64  `json:"id"`
	AgendaID   int64  `json:"agendaId"`
	Fecha      string `json:"fecha"`
	PacienteID int64  `json:"pacienteId"`
	MedicoID   *int64 `json:"medicoId,omitempty"`

	Determinaciones string `json:"determinaciones,omitempty"`
	NotaInterna     string `json:"notaInterna,omitempty"`
	Rescheduled     bool   `json:"rescheduled"`

	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateTurnoRequest) ToUseCaseRequest(turnoID int64) (*updateTurno.Request, error) {
	req := &updateTurno.Request{
		TurnoID:         turnoID,
		AgendaID:        r.AgendaID,
		MedicoNombre:    r.MedicoNombre,
		Determinaciones: r.Determinaciones,
		NotaInterna:     r.NotaInterna,
	}

	if r.Fecha != nil {
		fecha, err := time.Parse(domain.DateFormat, *r.Fecha)
		if err != nil {
			return nil, err
		}
		req.Fecha = &fecha
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateTurno.Response) *TurnoResponse {
	return &TurnoResponse{
		ID:              resp.ID,
		AgendaID:        resp.AgendaID,
		Fecha:           resp.Fecha.Format(domain.DateFormat),
		PacienteID:      resp.PacienteID,
		MedicoID:        resp.MedicoID,
		Determinaciones: resp.Determinaciones,
		NotaInterna:     resp.NotaInterna,
		Rescheduled:     resp.Rescheduled,
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
