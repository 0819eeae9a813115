package list_agendas

import (
	"net/http"

	"github.com/lab-agenda/turnero-service/internal/api/handlers"
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

// Handle GET /api/v1/agendas
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /agendas - Failed to list agendas: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /agendas - Agendas retrieved successfully: count=%d", len(result.Agendas))
	handlers.RespondJSON(w, http.StatusOK, result)
}
