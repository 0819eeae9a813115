package list_turnos

import (
	"errors"
	"net/http"

	"github.com/lab-agenda/turnero-service/internal/api/handlers"
	"github.com/lab-agenda/turnero-service/internal/service/turnos"
)

const (
	msgInvalidParams  = "parámetros de consulta inválidos"
	msgAgendaNotFound = "agenda no encontrada"
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

// Handle GET /api/v1/turnos
// Query params: agendaId, desde, hasta, documento (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceReq, err := ToServiceRequest(
		query.Get("agendaId"),
		query.Get("desde"),
		query.Get("hasta"),
		query.Get("documento"),
	)
	if err != nil {
		h.logger.Warn("GET /turnos - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, turnos.ErrAgendaNotFound):
			h.logger.Warn("GET /turnos - Agenda not found")
			handlers.RespondNotFound(w, msgAgendaNotFound)

		case errors.Is(err, turnos.ErrInvalidInput):
			h.logger.Warn("GET /turnos - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /turnos - Failed to list turnos: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /turnos - Turnos retrieved successfully: count=%d", len(result.Turnos))
	handlers.RespondJSON(w, http.StatusOK, result)
}
