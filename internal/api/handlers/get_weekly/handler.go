package get_weekly

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
	msgAgendaNotFound  = "agenda no encontrada"
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

// Handle GET /api/v1/agendas/{agendaId}/semana
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	agendaIDStr := vars["agendaId"]

	agendaID, err := strconv.ParseInt(agendaIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /agendas/{id}/semana - Invalid agenda ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAgendaID)
		return
	}

	result, err := h.service.ListWeekly(r.Context(), agendaID)
	if err != nil {
		switch {
		case errors.Is(err, agendas.ErrAgendaNotFound):
			h.logger.Warn("GET /agendas/{id}/semana - Agenda not found: agenda_id=%d", agendaID)
			handlers.RespondNotFound(w, msgAgendaNotFound)

		default:
			h.logger.Error("GET /agendas/{id}/semana - Failed to list weekly entries: agenda_id=%d, error=%v",
				agendaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /agendas/{id}/semana - Weekly entries retrieved: agenda_id=%d, count=%d",
		agendaID, len(result.Entries))
	handlers.RespondJSON(w, http.StatusOK, result)
}
