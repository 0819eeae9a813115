package delete_agenda

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lab-agenda/turnero-service/internal/api/handlers"
	"github.com/lab-agenda/turnero-service/internal/service/agendas"
)

const (
	msgInvalidAgendaID = "ID de agenda inválido"
	msgNotFound        = "agenda no encontrada"
	msgAgendaInUse     = "la agenda tiene turnos registrados y no puede eliminarse"
)

type Handler struct {
	service AgendaService
	logger  Logger
}

func NewHandler(service AgendaService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/agendas/{agendaId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	agendaIDStr := vars["agendaId"]

	agendaID, err := strconv.ParseInt(agendaIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /agendas/{id} - Invalid agenda ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAgendaID)
		return
	}

	if err := h.service.Delete(r.Context(), agendaID); err != nil {
		switch {
		case errors.Is(err, agendas.ErrAgendaNotFound):
			h.logger.Warn("DELETE /agendas/{id} - Agenda not found: agenda_id=%d", agendaID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, agendas.ErrAgendaInUse):
			h.logger.Warn("DELETE /agendas/{id} - Agenda has existing turnos: agenda_id=%d", agendaID)
			handlers.RespondError(w, http.StatusConflict, msgAgendaInUse)

		default:
			h.logger.Error("DELETE /agendas/{id} - Failed to delete agenda: agenda_id=%d, error=%v", agendaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /agendas/{id} - Agenda deleted successfully: agenda_id=%d", agendaID)
	handlers.RespondNoContent(w)
}
