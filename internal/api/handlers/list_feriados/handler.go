package list_feriados

import (
	"net/http"

	"github.com/lab-agenda/turnero-service/internal/api/handlers"
)

type Handler struct {
	service FeriadoService
	logger  Logger
}

func NewHandler(service FeriadoService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/feriados
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /feriados - Failed to list feriados: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /feriados - Feriados retrieved successfully: count=%d", len(result.Feriados))
	handlers.RespondJSON(w, http.StatusOK, result)
}
