package create_feriado

import (
	"errors"
	"net/http"

	"github.com/lab-agenda/turnero-service/internal/api/handlers"
	"github.com/lab-agenda/turnero-service/internal/service/feriados"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidDate        = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgFeriadoExists      = "ya existe un feriado en esa fecha"
	msgInvalidInput       = "datos del feriado inválidos"
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

// Handle POST /api/v1/feriados
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateFeriadoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /feriados - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /feriados - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, feriados.ErrFeriadoExists):
			h.logger.Warn("POST /feriados - Feriado already exists: fecha=%s", req.Fecha)
			handlers.RespondError(w, http.StatusConflict, msgFeriadoExists)

		case errors.Is(err, feriados.ErrInvalidInput):
			h.logger.Warn("POST /feriados - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /feriados - Failed to create feriado: fecha=%s, error=%v", req.Fecha, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /feriados - Feriado created successfully: feriado_id=%d, fecha=%s", result.ID, result.Fecha)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
