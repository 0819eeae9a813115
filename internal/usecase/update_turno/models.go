package update_turno

import "time"

// Request модель запроса на обновление turno.
// nil поля остаются без изменений.
type Request struct {
	TurnoID int64

	AgendaID        *int64     // Перенос на другую агенду
	Fecha           *time.Time // Перенос на другую дату
	MedicoNombre    *string    // Пустая строка снимает медика
	Determinaciones *string
	NotaInterna     *string
}

// Response модель ответа с обновленным turno
type Response struct {
	ID         int64
	AgendaID   int64
	Fecha      time.Time
	PacienteID int64
	MedicoID   *int64

	Determinaciones string
	NotaInterna     string

	// Rescheduled true, если turno был перенесен на другую пару (agenda, fecha)
	// через полную booking-транзакцию
	Rescheduled bool

	UpdatedAt time.Time
}
