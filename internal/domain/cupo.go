package domain

import "time"

// Cupo is an explicit total-slot count for one agenda on one date.
// At most one cupo exists per (agenda, fecha) pair; the row always wins
// over the weekly default, even when its total is smaller.
type Cupo struct {
	ID            int64
	AgendaID      int64
	Fecha         time.Time // date only, midnight UTC
	CantidadTotal int
	Usuario       string // username of the administrator that provisioned the cupo

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WeeklyAvailability is the recurring per-weekday capacity of an agenda,
// used only when no explicit cupo exists for a date. An inactive entry or
// a date outside the optional validity range yields no capacity.
type WeeklyAvailability struct {
	ID         int64
	AgendaID   int64
	Weekday    time.Weekday
	Capacidad  int
	Active     bool
	ValidFrom  *time.Time
	ValidUntil *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppliesTo returns true if this weekly entry yields capacity for the date
func (w *WeeklyAvailability) AppliesTo(fecha time.Time) bool {
	if !w.Active || w.Weekday != fecha.Weekday() {
		return false
	}
	if w.ValidFrom != nil && fecha.Before(*w.ValidFrom) {
		return false
	}
	if w.ValidUntil != nil && fecha.After(*w.ValidUntil) {
		return false
	}
	return true
}

// Feriado is a holiday: a date with zero capacity on every agenda,
// regardless of cupos or weekly defaults.
type Feriado struct {
	ID          int64
	Fecha       time.Time
	Descripcion string

	CreatedAt time.Time
}

// Disponibilidad is the derived availability snapshot for one (agenda, fecha)
// pair. Disponibles is always computed, never stored, and floors at zero:
// provisioning may shrink capacity below the committed count.
type Disponibilidad struct {
	AgendaID  int64
	Fecha     time.Time
	Capacidad int
	Usados    int
}

// Disponibles returns the number of free slots, never negative
func (d *Disponibilidad) Disponibles() int {
	libres := d.Capacidad - d.Usados
	if libres < 0 {
		return 0
	}
	return libres
}

// Completa returns true if the date has no free slots left
func (d *Disponibilidad) Completa() bool {
	return d.Disponibles() <= 0
}
