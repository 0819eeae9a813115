package create_turno

import "time"

// Request модель запроса на создание turno
type Request struct {
	AgendaID int64     // ID агенды
	Fecha    time.Time // Дата turno (без времени)

	// Данные пациента (upsert по documento перед созданием turno)
	Documento       string
	Nombre          string
	Apellido        string
	FechaNacimiento time.Time
	Sexo            string
	Telefono        *string
	Email           *string
	Observaciones   string

	MedicoNombre    string // Имя направившего медика (опционально)
	Determinaciones string // Запрошенные определения
	NotaInterna     string // Внутренняя заметка персонала
	Usuario         string // Логин сотрудника, создающего turno
}

// Response модель ответа с созданным turno
type Response struct {
	ID         int64
	AgendaID   int64
	Fecha      time.Time
	PacienteID int64
	MedicoID   *int64

	Determinaciones string
	NotaInterna     string
	Usuario         string

	// Доступность пары (agenda, fecha) после создания turno
	Capacidad   int
	Usados      int
	Disponibles int

	CreatedAt time.Time
}
