package get_disponibilidad

import "time"

// Request модель запроса доступности за период
type Request struct {
	AgendaID int64
	Desde    time.Time
	Hasta    time.Time
}

// Day снимок доступности одного дня
type Day struct {
	Fecha       time.Time
	Capacidad   int
	Usados      int
	Disponibles int
	Completa    bool
	Feriado     bool
	Descripcion string // Описание feriado, если есть
}

// Response модель ответа с календарем доступности
type Response struct {
	AgendaID int64
	Days     []Day
}
