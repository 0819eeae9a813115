package upsert_weekly

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lab-agenda/turnero-service/internal/api/handlers"
	"github.com/lab-agenda/turnero-service/internal/service/agendas"
	"github.com/lab-agenda/turnero-service/internal/service/agendas/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidAgendaID    = "ID de agenda inválido"
	msgAgendaNotFound     = "agenda no encontrada"
	msgInvalidInput       = "datos del horario semanal inválidos"
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

// Handle PUT /api/v1/agendas/{agendaId}/semana
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	agendaIDStr := vars["agendaId"]

	agendaID, err := strconv.ParseInt(agendaIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /agendas/{id}/semana - Invalid agenda ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAgendaID)
		return
	}

	var req models.UpsertWeeklyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /agendas/{id}/semana - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req.AgendaID = agendaID

	result, err := h.service.UpsertWeekly(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, agendas.ErrAgendaNotFound):
			h.logger.Warn("PUT /agendas/{id}/semana - Agenda not found: agenda_id=%d", agendaID)
			handlers.RespondNotFound(w, msgAgendaNotFound)

		case errors.Is(err, agendas.ErrInvalidInput):
			h.logger.Warn("PUT /agendas/{id}/semana - Invalid input: agenda_id=%d, error=%v", agendaID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /agendas/{id}/semana - Failed to upsert weekly entry: agenda_id=%d, error=%v",
				agendaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /agendas/{id}/semana - Weekly entry upserted: agenda_id=%d, weekday=%d, capacidad=%d",
		agendaID, result.Weekday, result.Capacidad)
	handlers.RespondJSON(w, http.StatusOK, result)
}
