package models

import (
	"time"

	"github.com/lab-agenda/turnero-service/internal/domain"
)

// Request модели

// CreateFeriadoRequest запрос на создание feriado
type CreateFeriadoRequest struct {
	Fecha       time.Time `json:"fecha"`
	Descripcion string    `json:"descripcion"`
}

// ToDomain конвертирует request в domain модель
func (r *CreateFeriadoRequest) ToDomain() *domain.Feriado {
	return &domain.Feriado{
		Fecha:       domain.NormalizeDate(r.Fecha),
		Descripcion: r.Descripcion,
	}
}

// Response модели

// FeriadoResponse ответ с данными feriado
type FeriadoResponse struct {
	ID          int64  `json:"id"`
	Fecha       string `json:"fecha"` // "2026-05-01"
	Descripcion string `json:"descripcion"`

	CreatedAt time.Time `json:"createdAt"`
}

// FeriadoListResponse ответ со списком feriados
type FeriadoListResponse struct {
	Feriados []FeriadoResponse `json:"feriados"`
}

// Методы конвертации

// FromDomainFeriado конвертирует domain модель в DTO
func FromDomainFeriado(f *domain.Feriado) *FeriadoResponse {
	if f == nil {
		return nil
	}

	return &FeriadoResponse{
		ID:          f.ID,
		Fecha:       f.Fecha.Format(domain.DateFormat),
		Descripcion: f.Descripcion,
		CreatedAt:   f.CreatedAt,
	}
}

// FromDomainFeriadoList конвертирует список domain моделей в DTO
func FromDomainFeriadoList(feriados []*domain.Feriado) *FeriadoListResponse {
	resp := &FeriadoListResponse{Feriados: make([]FeriadoResponse, 0, len(feriados))}
	for _, f := range feriados {
		resp.Feriados = append(resp.Feriados, *FromDomainFeriado(f))
	}
	return resp
}
