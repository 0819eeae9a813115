package delete_feriado

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lab-agenda/turnero-service/internal/api/handlers"
	"github.com/lab-agenda/turnero-service/internal/service/feriados"
)

const (
	msgInvalidFeriadoID = "ID de feriado inválido"
	msgNotFound         = "feriado no encontrado"
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

// Handle DELETE /api/v1/feriados/{feriadoId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	feriadoIDStr := vars["feriadoId"]

	feriadoID, err := strconv.ParseInt(feriadoIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /feriados/{id} - Invalid feriado ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFeriadoID)
		return
	}

	if err := h.service.Delete(r.Context(), feriadoID); err != nil {
		switch {
		case errors.Is(err, feriados.ErrFeriadoNotFound):
			h.logger.Warn("DELETE /feriados/{id} - Feriado not found: feriado_id=%d", feriadoID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /feriados/{id} - Failed to delete feriado: feriado_id=%d, error=%v",
				feriadoID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /feriados/{id} - Feriado deleted successfully: feriado_id=%d", feriadoID)
	handlers.RespondNoContent(w)
}
