package deprovision_cupos

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lab-agenda/turnero-service/internal/api/handlers"
	deprovisionCupos "github.com/lab-agenda/turnero-service/internal/usecase/deprovision_cupos"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidAgendaID    = "ID de agenda inválido"
	msgInvalidDate        = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgAgendaNotFound     = "agenda no encontrada"
	msgInvalidInput       = "parámetros de eliminación de cupos inválidos"
)

type Handler struct {
	useCase DeprovisionCuposUseCase
	logger  Logger
}

func NewHandler(useCase DeprovisionCuposUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/agendas/{agendaId}/cupos
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	agendaIDStr := vars["agendaId"]

	agendaID, err := strconv.ParseInt(agendaIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /agendas/{id}/cupos - Invalid agenda ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAgendaID)
		return
	}

	var req DeprovisionCuposRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /agendas/{id}/cupos - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(agendaID)
	if err != nil {
		h.logger.Warn("DELETE /agendas/{id}/cupos - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, deprovisionCupos.ErrAgendaNotFound):
			h.logger.Warn("DELETE /agendas/{id}/cupos - Agenda not found: agenda_id=%d", agendaID)
			handlers.RespondNotFound(w, msgAgendaNotFound)

		case errors.Is(err, deprovisionCupos.ErrInvalidInput):
			h.logger.Warn("DELETE /agendas/{id}/cupos - Invalid input: agenda_id=%d, error=%v", agendaID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("DELETE /agendas/{id}/cupos - Failed to deprovision cupos: agenda_id=%d, error=%v",
				agendaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseSummary(result)

	h.logger.Info("DELETE /agendas/{id}/cupos - Cupos deprovisioned: agenda_id=%d, eliminados=%d, reducidos=%d",
		agendaID, result.Eliminados, result.Reducidos)
	handlers.RespondJSON(w, http.StatusOK, response)
}
