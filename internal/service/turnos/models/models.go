package models

import (
	"time"

	"github.com/lab-agenda/turnero-service/internal/domain"
)

// Request модели

// ListTurnosRequest запрос на получение списка turnos
type ListTurnosRequest struct {
	AgendaID  *int64     `json:"agendaId,omitempty"`  // Фильтр по агенде (опционально)
	FechaFrom *time.Time `json:"fechaFrom,omitempty"` // Начало периода (опционально)
	FechaTo   *time.Time `json:"fechaTo,omitempty"`   // Конец периода (опционально)
	Documento *string    `json:"documento,omitempty"` // Фильтр по документу пациента (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListTurnosRequest) ToDomainFilter() domain.TurnosFilter {
	return domain.TurnosFilter{
		AgendaID:  r.AgendaID,
		FechaFrom: r.FechaFrom,
		FechaTo:   r.FechaTo,
		Documento: r.Documento,
	}
}

// Response модели

// PacienteResponse данные пациента в составе turno
type PacienteResponse struct {
	ID              int64   `json:"id"`
	Documento       string  `json:"documento"`
	Nombre          string  `json:"nombre"`
	Apellido        string  `json:"apellido"`
	FechaNacimiento string  `json:"fechaNacimiento"` // "1985-04-12"
	Sexo            string  `json:"sexo"`
	Telefono        *string `json:"telefono,omitempty"`
	Email           *string `json:"email,omitempty"`
	Observaciones   string  `json:"observaciones,omitempty"`
}

// MedicoResponse данные медика в составе turno
type MedicoResponse struct {
	ID        int64   `json:"id"`
	Nombre    string  `json:"nombre"`
	Matricula *string `json:"matricula,omitempty"`
}

// TurnoResponse ответ с данными turno
type TurnoResponse struct {
	ID       int64  `json:"id"`
	AgendaID int64  `json:"agendaId"`
	Fecha    string `json:"fecha"` // "2026-03-02"

	Paciente *PacienteResponse `json:"paciente,omitempty"`
	Medico   *MedicoResponse   `json:"medico,omitempty"`

	Determinaciones string `json:"determinaciones,omitempty"`
	NotaInterna     string `json:"notaInterna,omitempty"`
	Usuario         string `json:"usuario"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TurnoListResponse ответ со списком turnos
type TurnoListResponse struct {
	Turnos []TurnoResponse `json:"turnos"`
}

// Методы конвертации

// FromDomainTurno конвертирует domain модель в DTO
func FromDomainTurno(t *domain.Turno, p *domain.Paciente, m *domain.Medico) *TurnoResponse {
	if t == nil {
		return nil
	}

	resp := &TurnoResponse{
		ID:              t.ID,
		AgendaID:        t.AgendaID,
		Fecha:           t.Fecha.Format(domain.DateFormat),
		Determinaciones: t.Determinaciones,
		NotaInterna:     t.NotaInterna,
		Usuario:         t.Usuario,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}

	if p != nil {
		resp.Paciente = &PacienteResponse{
			ID:              p.ID,
			Documento:       p.Documento,
			Nombre:          p.Nombre,
			Apellido:        p.Apellido,
			FechaNacimiento: p.FechaNacimiento.Format(domain.DateFormat),
			Sexo:            p.Sexo,
			Telefono:        p.Telefono,
			Email:           p.Email,
			Observaciones:   p.Observaciones,
		}
	}

	if m != nil {
		resp.Medico = &MedicoResponse{
			ID:        m.ID,
			Nombre:    m.Nombre,
			Matricula: m.Matricula,
		}
	}

	return resp
}
