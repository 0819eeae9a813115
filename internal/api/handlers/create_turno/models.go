package create_turno

import (
	"time"

	"github.com/lab-agenda/turnero-service/internal/domain"
	createTurno "github.com/lab-agenda/turnero-service/internal/usecase/create_turno"
)

// CreateTurnoRequest HTTP request model
type CreateTurnoRequest struct {
	AgendaID int64  `json:"agendaId"`
	Fecha    string `json:"fecha"` // "2026-03-02"

	Paciente PacienteData `json:"paciente"`

	MedicoNombre    string `json:"medicoNombre,omitempty"`
	Determinaciones string `json:"determinaciones,omitempty"`
	NotaInterna     string `json:"notaInterna,omitempty"`
}

// PacienteData данные пациента в запросе
type PacienteData struct {
	Documento       string  `json:"documento"`
	Nombre          string  `json:"nombre"`
	Apellido        string  `json:"apellido"`
	FechaNacimiento string  `json:"fechaNacimiento"` // "1985-04-12"
	Sexo            string  `json:"sexo"`
	Telefono        *string `json:"telefono,omitempty"`
	Email           *string `json:"email,omitempty"`
	Observaciones   string  `json:"observaciones,omitempty"`
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
	Usuario         string `json:"usuario"`

	Capacidad   int `json:"capacidad"`
	Usados      int `json:"usados"`
	Disponibles int `json:"disponibles"`

	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateTurnoRequest) ToUseCaseRequest(usuario string) (*createTurno.Request, error) {
	fecha, err := time.Parse(domain.DateFormat, r.Fecha)
	if err != nil {
		return nil, err
	}

	fechaNacimiento, err := time.Parse(domain.DateFormat, r.Paciente.FechaNacimiento)
	if err != nil {
		return nil, err
	}

	return &createTurno.Request{
		AgendaID:        r.AgendaID,
		Fecha:           fecha,
		Documento:       r.Paciente.Documento,
		Nombre:          r.Paciente.Nombre,
		Apellido:        r.Paciente.Apellido,
		FechaNacimiento: fechaNacimiento,
		Sexo:            r.Paciente.Sexo,
		Telefono:        r.Paciente.Telefono,
		Email:           r.Paciente.Email,
		Observaciones:   r.Paciente.Observaciones,
		MedicoNombre:    r.MedicoNombre,
		Determinaciones: r.Determinaciones,
		NotaInterna:     r.NotaInterna,
		Usuario:         usuario,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createTurno.Response) *TurnoResponse {
	return &TurnoResponse{
		ID:              resp.ID,
		AgendaID:        resp.AgendaID,
		Fecha:           resp.Fecha.Format(domain.DateFormat),
		PacienteID:      resp.PacienteID,
		MedicoID:        resp.MedicoID,
		Determinaciones: resp.Determinaciones,
		NotaInterna:     resp.NotaInterna,
		Usuario:         resp.Usuario,
		Capacidad:       resp.Capacidad,
		Usados:          resp.Usados,
		Disponibles:     resp.Disponibles,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
