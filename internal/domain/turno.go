package domain

import "time"

// Turno is one reserved slot against an agenda and a date.
// Turnos are counted (never summed) against capacity; deleting a turno
// frees a slot without touching the cupo row.
type Turno struct {
	ID         int64
	AgendaID   int64
	Fecha      time.Time // date only, midnight UTC
	PacienteID int64
	MedicoID   *int64

	// Free-form order data captured at booking time
	Determinaciones string
	NotaInterna     string
	Usuario         string // username of the staff member that created the turno

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Reschedules returns true if moving the turno to the given pair changes
// its (agenda, fecha) identity and therefore requires a full re-booking
// against the new pair's capacity
func (t *Turno) Reschedules(agendaID int64, fecha time.Time) bool {
	return t.AgendaID != agendaID || !SameDate(t.Fecha, fecha)
}

// TurnosFilter filters turno listings for staff views
type TurnosFilter struct {
	AgendaID  *int64
	FechaFrom *time.Time
	FechaTo   *time.Time
	Documento *string
}
