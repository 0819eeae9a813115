package deprovision_cupos

import "time"

// Request модель запроса на массовое удаление/уменьшение cupos
type Request struct {
	AgendaID int64
	Desde    time.Time
	Hasta    time.Time
	// Cantidad задает величину уменьшения cantidad_total; строка удаляется,
	// когда результат <= 0. nil удаляет cupo целиком.
	Cantidad *int
	// Weekday ограничивает операцию одним днем недели (опционально)
	Weekday *time.Weekday
}

// Summary итог массовой операции
type Summary struct {
	Eliminados int // Удалено cupos
	Reducidos  int // Уменьшено cupos
}
