package domain

import "time"

// Agenda represents a bookable scheduling track of the laboratory
// (e.g. "Ambulatorio", "Emergencia"). Reference data: created by
// administrators and rarely mutated afterwards.
type Agenda struct {
	ID      int64
	Name    string
	Slug    string
	Color   string
	Usuario string // username of the administrator that created the agenda

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayColor returns the agenda color, falling back to the default
// calendar color when none is configured
func (a *Agenda) DisplayColor() string {
	if a.Color == "" {
		return DefaultAgendaColor
	}
	return a.Color
}
