package provision_cupos

import "time"

// Request модель запроса на массовое создание cupos
type Request struct {
	AgendaID      int64
	Desde         time.Time
	Hasta         time.Time
	CantidadTotal int
	// Weekday ограничивает генерацию одним днем недели (опционально).
	// Суббота и воскресенье пропускаются всегда, независимо от фильтра.
	Weekday *time.Weekday
	Usuario string
}

// Summary итог массовой операции
type Summary struct {
	Creados      int // Создано новых cupos
	Actualizados int // Перезаписано существующих cupos
}
