package get_disponibilidad

import (
	"time"

	"github.com/lab-agenda/turnero-service/internal/domain"
	getDisponibilidad "github.com/lab-agenda/turnero-service/internal/usecase/get_disponibilidad"
)

// DayResponse снимок доступности одного дня
type DayResponse struct {
	Fecha       string `json:"fecha"` // "2026-03-02"
	Capacidad   int    `json:"capacidad"`
	Usados      int    `json:"usados"`
	Disponibles int    `json:"disponibles"`
	Completa    bool   `json:"completa"`
	Feriado     bool   `json:"feriado"`
	Descripcion string `json:"descripcion,omitempty"`
}

// DisponibilidadResponse HTTP response model
type DisponibilidadResponse struct {
	AgendaID int64         `json:"agendaId"`
	Days     []DayResponse `json:"days"`
}

// ToUseCaseRequest собирает запрос use case из path и query параметров
func ToUseCaseRequest(agendaID int64, desdeStr, hastaStr string) (*getDisponibilidad.Request, error) {
	desde, err := time.Parse(domain.DateFormat, desdeStr)
	if err != nil {
		return nil, err
	}

	hasta, err := time.Parse(domain.DateFormat, hastaStr)
	if err != nil {
		return nil, err
	}

	return &getDisponibilidad.Request{
		AgendaID: agendaID,
		Desde:    desde,
		Hasta:    hasta,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDisponibilidad.Response) *DisponibilidadResponse {
	out := &DisponibilidadResponse{
		AgendaID: resp.AgendaID,
		Days:     make([]DayResponse, 0, len(resp.Days)),
	}

	for _, d := range resp.Days {
		out.Days = append(out.Days, DayResponse{
			Fecha:       d.Fecha.Format(domain.DateFormat),
			Capacidad:   d.Capacidad,
			Usados:      d.Usados,
			Disponibles: d.Disponibles,
			Completa:    d.Completa,
			Feriado:     d.Feriado,
			Descripcion: d.Descripcion,
		})
	}

	return out
}
