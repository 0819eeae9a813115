package domain

import "time"

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default values
const (
	DefaultAgendaColor = "#4caf50"
)

// Business validation constants
const (
	MaxCantidadTotal      = 500
	MaxDeterminacionesLen = 2000
	MaxNotaInternaLen     = 500
	MaxObservacionesLen   = 500
	MaxProvisionRangeDays = 366
	MaxCalendarRangeDays  = 93
)

// IsWeekend returns true for Saturday and Sunday. The laboratory does not
// operate on weekends, so bulk provisioning always skips them.
func IsWeekend(fecha time.Time) bool {
	wd := fecha.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// NormalizeDate truncates a timestamp to its date at midnight UTC.
// All (agenda, fecha) keys use normalized dates.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDate returns true if both timestamps fall on the same calendar date
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
