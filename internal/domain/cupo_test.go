package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var lunes = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // Monday

func TestWeeklyAvailability_AppliesTo(t *testing.T) {
	before := lunes.AddDate(0, 0, -14)
	after := lunes.AddDate(0, 0, 14)

	tests := []struct {
		name  string
		entry WeeklyAvailability
		want  bool
	}{
		{
			name:  "active matching weekday",
			entry: WeeklyAvailability{Weekday: time.Monday, Active: true},
			want:  true,
		},
		{
			name:  "wrong weekday",
			entry: WeeklyAvailability{Weekday: time.Tuesday, Active: true},
			want:  false,
		},
		{
			name:  "inactive entry",
			entry: WeeklyAvailability{Weekday: time.Monday, Active: false},
			want:  false,
		},
		{
			name:  "inside validity window",
			entry: WeeklyAvailability{Weekday: time.Monday, Active: true, ValidFrom: &before, ValidUntil: &after},
			want:  true,
		},
		{
			name:  "before valid_from",
			entry: WeeklyAvailability{Weekday: time.Monday, Active: true, ValidFrom: &after},
			want:  false,
		},
		{
			name:  "after valid_until",
			entry: WeeklyAvailability{Weekday: time.Monday, Active: true, ValidUntil: &before},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.AppliesTo(lunes))
		})
	}
}

func TestDisponibilidad_DisponiblesNeverNegative(t *testing.T) {
	d := Disponibilidad{Capacidad: 2, Usados: 5}
	assert.Equal(t, 0, d.Disponibles())
	assert.True(t, d.Completa())

	d = Disponibilidad{Capacidad: 10, Usados: 4}
	assert.Equal(t, 6, d.Disponibles())
	assert.False(t, d.Completa())
}

func TestIsWeekend(t *testing.T) {
	assert.False(t, IsWeekend(lunes))
	assert.True(t, IsWeekend(lunes.AddDate(0, 0, 5)))  // Saturday
	assert.True(t, IsWeekend(lunes.AddDate(0, 0, -1))) // Sunday
}

func TestNormalizeDate(t *testing.T) {
	loc := time.FixedZone("ART", -3*3600)
	stamped := time.Date(2026, 3, 2, 14, 35, 12, 999, loc)

	got := NormalizeDate(stamped)
	assert.Equal(t, lunes, got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestTurno_Reschedules(t *testing.T) {
	turno := Turno{AgendaID: 1, Fecha: lunes}

	assert.False(t, turno.Reschedules(1, lunes))
	assert.True(t, turno.Reschedules(2, lunes))
	assert.True(t, turno.Reschedules(1, lunes.AddDate(0, 0, 1)))
}
