package provision_cupos

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lab-agenda/turnero-service/internal/api/handlers"
	"github.com/lab-agenda/turnero-service/internal/api/middleware"
	provisionCupos "github.com/lab-agenda/turnero-service/internal/usecase/provision_cupos"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidAgendaID    = "ID de agenda inválido"
	msgInvalidDate        = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgAgendaNotFound     = "agenda no encontrada"
	msgInvalidInput       = "parámetros de generación de cupos inválidos"
)

type Handler struct {
	useCase ProvisionCuposUseCase
	logger  Logger
}

func NewHandler(useCase ProvisionCuposUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/agendas/{agendaId}/cupos
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	agendaIDStr := vars["agendaId"]

	agendaID, err := strconv.ParseInt(agendaIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /agendas/{id}/cupos - Invalid agenda ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAgendaID)
		return
	}

	var req ProvisionCuposRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /agendas/{id}/cupos - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	usuario := middleware.UsuarioFromContext(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(agendaID, usuario)
	if err != nil {
		h.logger.Warn("POST /agendas/{id}/cupos - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, provisionCupos.ErrAgendaNotFound):
			h.logger.Warn("POST /agendas/{id}/cupos - Agenda not found: agenda_id=%d", agendaID)
			handlers.RespondNotFound(w, msgAgendaNotFound)

		case errors.Is(err, provisionCupos.ErrInvalidInput):
			h.logger.Warn("POST /agendas/{id}/cupos - Invalid input: agenda_id=%d, error=%v", agendaID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /agendas/{id}/cupos - Failed to provision cupos: agenda_id=%d, error=%v",
				agendaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseSummary(result)

	h.logger.Info("POST /agendas/{id}/cupos - Cupos provisioned: agenda_id=%d, creados=%d, actualizados=%d",
		agendaID, result.Creados, result.Actualizados)
	handlers.RespondJSON(w, http.StatusOK, response)
}
