package update_turno

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lab-agenda/turnero-service/internal/api/handlers"
	updateTurno "github.com/lab-agenda/turnero-service/internal/usecase/update_turno"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidTurnoID     = "ID de turno inválido"
	msgInvalidDate        = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgTurnoNotFound      = "turno no encontrado"
	msgAgendaNotFound     = "agenda no encontrada"
	msgFeriado            = "la fecha seleccionada es un feriado"
	msgSinCupo            = "no hay cupos configurados para la fecha seleccionada"
	msgFechaCompleta      = "no quedan turnos disponibles para la fecha seleccionada"
	msgLockTimeout        = "el sistema está ocupado, intente nuevamente"
	msgInvalidInput       = "datos del turno inválidos"
)

type Handler struct {
	useCase UpdateTurnoUseCase
	logger  Logger
}

func NewHandler(useCase UpdateTurnoUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/turnos/{turnoId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	turnoIDStr := vars["turnoId"]

	turnoID, err := strconv.ParseInt(turnoIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /turnos/{id} - Invalid turno ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurnoID)
		return
	}

	var req UpdateTurnoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /turnos/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(turnoID)
	if err != nil {
		h.logger.Warn("PUT /turnos/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateTurno.ErrTurnoNotFound):
			h.logger.Warn("PUT /turnos/{id} - Turno not found: turno_id=%d", turnoID)
			handlers.RespondNotFound(w, msgTurnoNotFound)

		case errors.Is(err, updateTurno.ErrAgendaNotFound):
			h.logger.Warn("PUT /turnos/{id} - Agenda not found: turno_id=%d", turnoID)
			handlers.RespondNotFound(w, msgAgendaNotFound)

		case errors.Is(err, updateTurno.ErrFeriado):
			h.logger.Warn("PUT /turnos/{id} - Fecha is a feriado: turno_id=%d", turnoID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgFeriado)

		case errors.Is(err, updateTurno.ErrSinCupo):
			h.logger.Warn("PUT /turnos/{id} - No capacity configured: turno_id=%d", turnoID)
			handlers.RespondError(w, http.StatusConflict, msgSinCupo)

		case errors.Is(err, updateTurno.ErrFechaCompleta):
			h.logger.Warn("PUT /turnos/{id} - Target fecha is full: turno_id=%d", turnoID)
			handlers.RespondError(w, http.StatusConflict, msgFechaCompleta)

		case errors.Is(err, updateTurno.ErrLockTimeout):
			h.logger.Warn("PUT /turnos/{id} - Lock wait timeout: turno_id=%d", turnoID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgLockTimeout)

		case errors.Is(err, updateTurno.ErrInvalidInput):
			h.logger.Warn("PUT /turnos/{id} - Invalid input: turno_id=%d, error=%v", turnoID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /turnos/{id} - Failed to update turno: turno_id=%d, error=%v", turnoID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /turnos/{id} - Turno updated successfully: turno_id=%d, rescheduled=%t",
		turnoID, result.Rescheduled)
	handlers.RespondJSON(w, http.StatusOK, response)
}
