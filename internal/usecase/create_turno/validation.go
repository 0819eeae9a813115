package create_turno

import (
	"fmt"

	"github.com/lab-agenda/turnero-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AgendaID <= 0 {
		return fmt.Errorf("%w: agendaID must be positive", ErrInvalidInput)
	}

	if req.Fecha.IsZero() {
		return fmt.Errorf("%w: fecha is required", ErrInvalidInput)
	}

	if domain.IsWeekend(req.Fecha) {
		return fmt.Errorf("%w: the laboratory does not operate on weekends", ErrInvalidInput)
	}

	if req.Documento == "" {
		return fmt.Errorf("%w: documento is required", ErrInvalidInput)
	}

	if req.Nombre == "" {
		return fmt.Errorf("%w: nombre is required", ErrInvalidInput)
	}

	if req.Apellido == "" {
		return fmt.Errorf("%w: apellido is required", ErrInvalidInput)
	}

	if req.FechaNacimiento.IsZero() {
		return fmt.Errorf("%w: fechaNacimiento is required", ErrInvalidInput)
	}

	if len(req.Determinaciones) > domain.MaxDeterminacionesLen {
		return fmt.Errorf("%w: determinaciones exceeds %d characters", ErrInvalidInput, domain.MaxDeterminacionesLen)
	}

	if len(req.NotaInterna) > domain.MaxNotaInternaLen {
		return fmt.Errorf("%w: notaInterna exceeds %d characters", ErrInvalidInput, domain.MaxNotaInternaLen)
	}

	if len(req.Observaciones) > domain.MaxObservacionesLen {
		return fmt.Errorf("%w: observaciones exceeds %d characters", ErrInvalidInput, domain.MaxObservacionesLen)
	}

	return nil
}
