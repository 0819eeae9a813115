package create_turno

import (
	"errors"
	"net/http"

	"github.com/lab-agenda/turnero-service/internal/api/handlers"
	"github.com/lab-agenda/turnero-service/internal/api/middleware"
	createTurno "github.com/lab-agenda/turnero-service/internal/usecase/create_turno"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidDate        = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgAgendaNotFound     = "agenda no encontrada"
	msgFeriado            = "la fecha seleccionada es un feriado"
	msgSinCupo            = "no hay cupos configurados para la fecha seleccionada"
	msgFechaCompleta      = "no quedan turnos disponibles para la fecha seleccionada"
	msgLockTimeout        = "el sistema está ocupado, intente nuevamente"
	msgInvalidInput       = "datos del turno inválidos"
)

type Handler struct {
	useCase CreateTurnoUseCase
	logger  Logger
}

func NewHandler(useCase CreateTurnoUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/turnos
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateTurnoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /turnos - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	usuario := middleware.UsuarioFromContext(r.Context())

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest(usuario)
	if err != nil {
		h.logger.Warn("POST /turnos - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createTurno.ErrAgendaNotFound):
			h.logger.Warn("POST /turnos - Agenda not found: agenda_id=%d", req.AgendaID)
			handlers.RespondNotFound(w, msgAgendaNotFound)

		case errors.Is(err, createTurno.ErrFeriado):
			h.logger.Warn("POST /turnos - Fecha is a feriado: agenda_id=%d, fecha=%s", req.AgendaID, req.Fecha)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgFeriado)

		case errors.Is(err, createTurno.ErrSinCupo):
			h.logger.Warn("POST /turnos - No capacity configured: agenda_id=%d, fecha=%s", req.AgendaID, req.Fecha)
			handlers.RespondError(w, http.StatusConflict, msgSinCupo)

		case errors.Is(err, createTurno.ErrFechaCompleta):
			h.logger.Warn("POST /turnos - Fecha is full: agenda_id=%d, fecha=%s", req.AgendaID, req.Fecha)
			handlers.RespondError(w, http.StatusConflict, msgFechaCompleta)

		case errors.Is(err, createTurno.ErrLockTimeout):
			h.logger.Warn("POST /turnos - Lock wait timeout: agenda_id=%d, fecha=%s", req.AgendaID, req.Fecha)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgLockTimeout)

		case errors.Is(err, createTurno.ErrInvalidInput):
			h.logger.Warn("POST /turnos - Invalid input: agenda_id=%d, error=%v", req.AgendaID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /turnos - Failed to create turno: agenda_id=%d, fecha=%s, error=%v",
				req.AgendaID, req.Fecha, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /turnos - Turno created successfully: turno_id=%d, agenda_id=%d, fecha=%s, disponibles=%d",
		result.ID, result.AgendaID, req.Fecha, result.Disponibles)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
