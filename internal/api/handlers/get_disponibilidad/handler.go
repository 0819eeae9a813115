package get_disponibilidad

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lab-agenda/turnero-service/internal/api/handlers"
	getDisponibilidad "github.com/lab-agenda/turnero-service/internal/usecase/get_disponibilidad"
)

const (
	msgInvalidAgendaID = "ID de agenda inválido"
	msgInvalidParams   = "parámetros de consulta inválidos, se espera desde y hasta en formato YYYY-MM-DD"
	msgAgendaNotFound  = "agenda no encontrada"
)

type Handler struct {
	useCase GetDisponibilidadUseCase
	logger  Logger
}

func NewHandler(useCase GetDisponibilidadUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/agendas/{agendaId}/disponibilidad
// Query params: desde, hasta (обязательные, формат YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	agendaIDStr := vars["agendaId"]

	agendaID, err := strconv.ParseInt(agendaIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /agendas/{id}/disponibilidad - Invalid agenda ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAgendaID)
		return
	}

	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(agendaID, query.Get("desde"), query.Get("hasta"))
	if err != nil {
		h.logger.Warn("GET /agendas/{id}/disponibilidad - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getDisponibilidad.ErrAgendaNotFound):
			h.logger.Warn("GET /agendas/{id}/disponibilidad - Agenda not found: agenda_id=%d", agendaID)
			handlers.RespondNotFound(w, msgAgendaNotFound)

		case errors.Is(err, getDisponibilidad.ErrInvalidInput):
			h.logger.Warn("GET /agendas/{id}/disponibilidad - Invalid input: agenda_id=%d, error=%v", agendaID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /agendas/{id}/disponibilidad - Failed to get availability: agenda_id=%d, error=%v",
				agendaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /agendas/{id}/disponibilidad - Availability retrieved: agenda_id=%d, days=%d",
		agendaID, len(response.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
