package delete_turno

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lab-agenda/turnero-service/internal/api/handlers"
	"github.com/lab-agenda/turnero-service/internal/service/turnos"
)

const (
	msgInvalidTurnoID = "ID de turno inválido"
	msgNotFound       = "turno no encontrado"
)

type Handler struct {
	service TurnoService
	logger  Logger
}

func NewHandler(service TurnoService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/turnos/{turnoId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	turnoIDStr := vars["turnoId"]

	turnoID, err := strconv.ParseInt(turnoIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /turnos/{id} - Invalid turno ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurnoID)
		return
	}

	if err := h.service.Delete(r.Context(), turnoID); err != nil {
		switch {
		case errors.Is(err, turnos.ErrTurnoNotFound):
			h.logger.Warn("DELETE /turnos/{id} - Turno not found: turno_id=%d", turnoID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /turnos/{id} - Failed to delete turno: turno_id=%d, error=%v", turnoID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /turnos/{id} - Turno deleted successfully: turno_id=%d", turnoID)
	handlers.RespondNoContent(w)
}
