package domain

import "time"

// Paciente is the party a turno is reserved for. Patients are identified
// by their document number and upserted from booking requests, so the
// registry always reflects the latest demographic data supplied.
type Paciente struct {
	ID              int64
	Documento       string
	Nombre          string
	Apellido        string
	FechaNacimiento time.Time
	Sexo            string
	Telefono        *string
	Email           *string
	Observaciones   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Medico is the optionally referring physician of a turno.
// Read-mostly reference data maintained outside the booking hot path.
type Medico struct {
	ID        int64
	Nombre    string
	Matricula *string

	CreatedAt time.Time
}
