package provision_cupos

import (
	"fmt"
	"time"

	"github.com/lab-agenda/turnero-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AgendaID <= 0 {
		return fmt.Errorf("%w: agendaID must be positive", ErrInvalidInput)
	}

	if req.Desde.IsZero() || req.Hasta.IsZero() {
		return fmt.Errorf("%w: desde and hasta are required", ErrInvalidInput)
	}

	if req.Desde.After(req.Hasta) {
		return fmt.Errorf("%w: desde must not be after hasta", ErrInvalidInput)
	}

	days := int(domain.NormalizeDate(req.Hasta).Sub(domain.NormalizeDate(req.Desde)).Hours()/24) + 1
	if days > domain.MaxProvisionRangeDays {
		return fmt.Errorf("%w: range exceeds %d days", ErrInvalidInput, domain.MaxProvisionRangeDays)
	}

	if req.CantidadTotal <= 0 {
		return fmt.Errorf("%w: cantidadTotal must be positive", ErrInvalidInput)
	}

	if req.CantidadTotal > domain.MaxCantidadTotal {
		return fmt.Errorf("%w: cantidadTotal exceeds %d", ErrInvalidInput, domain.MaxCantidadTotal)
	}

	if req.Weekday != nil && (*req.Weekday == time.Saturday || *req.Weekday == time.Sunday) {
		return fmt.Errorf("%w: weekday filter cannot be a weekend day", ErrInvalidInput)
	}

	return nil
}
