package models

import (
	"time"

	"github.com/lab-agenda/turnero-service/internal/domain"
)

// Request модели

// CreateAgendaRequest запрос на создание агенды
type CreateAgendaRequest struct {
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Color   string `json:"color,omitempty"`
	Usuario string `json:"-"`
}

// ToDomain конвертирует request в domain модель
func (r *CreateAgendaRequest) ToDomain() *domain.Agenda {
	return &domain.Agenda{
		Name:    r.Name,
		Slug:    r.Slug,
		Color:   r.Color,
		Usuario: r.Usuario,
	}
}

// UpsertWeeklyRequest запрос на установку недельного расписания
type UpsertWeeklyRequest struct {
	AgendaID   int64      `json:"-"`
	Weekday    int        `json:"weekday"` // 0=воскресенье ... 6=суббота, как time.Weekday
	Capacidad  int        `json:"capacidad"`
	Active     bool       `json:"active"`
	ValidFrom  *time.Time `json:"validFrom,omitempty"`
	ValidUntil *time.Time `json:"validUntil,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *UpsertWeeklyRequest) ToDomain() *domain.WeeklyAvailability {
	return &domain.WeeklyAvailability{
		AgendaID:   r.AgendaID,
		Weekday:    time.Weekday(r.Weekday),
		Capacidad:  r.Capacidad,
		Active:     r.Active,
		ValidFrom:  r.ValidFrom,
		ValidUntil: r.ValidUntil,
	}
}

// Response модели

// AgendaResponse ответ с данными агенды
type AgendaResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Color   string `json:"color"`
	Usuario string `json:"usuario"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AgendaListResponse ответ со списком агенд
type AgendaListResponse struct {
	Agendas []AgendaResponse `json:"agendas"`
}

// WeeklyResponse ответ с записью недельного расписания
type WeeklyResponse struct {
	ID         int64      `json:"id"`
	AgendaID   int64      `json:"agendaId"`
	Weekday    int        `json:"weekday"`
	Capacidad  int        `json:"capacidad"`
	Active     bool       `json:"active"`
	ValidFrom  *time.Time `json:"validFrom,omitempty"`
	ValidUntil *time.Time `json:"validUntil,omitempty"`
}

// WeeklyListResponse ответ с недельным расписанием агенды
type WeeklyListResponse struct {
	AgendaID int64            `json:"agendaId"`
	Entries  []WeeklyResponse `json:"entries"`
}

// Методы конвертации

// FromDomainAgenda конвертирует domain модель в DTO
func FromDomainAgenda(a *domain.Agenda) *AgendaResponse {
	if a == nil {
		return nil
	}

	return &AgendaResponse{
		ID:        a.ID,
		Name:      a.Name,
		Slug:      a.Slug,
		Color:     a.DisplayColor(),
		Usuario:   a.Usuario,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// FromDomainAgendaList конвертирует список domain моделей в DTO
func FromDomainAgendaList(agendas []*domain.Agenda) *AgendaListResponse {
	resp := &AgendaListResponse{Agendas: make([]AgendaResponse, 0, len(agendas))}
	for _, a := range agendas {
		resp.Agendas = append(resp.Agendas, *FromDomainAgenda(a))
	}
	return resp
}

// FromDomainWeekly конвертирует domain модель в DTO
func FromDomainWeekly(w *domain.WeeklyAvailability) *WeeklyResponse {
	if w == nil {
		return nil
	}

	return &WeeklyResponse{
		ID:         w.ID,
		AgendaID:   w.AgendaID,
		Weekday:    int(w.Weekday),
		Capacidad:  w.Capacidad,
		Active:     w.Active,
		ValidFrom:  w.ValidFrom,
		ValidUntil: w.ValidUntil,
	}
}
