package create_agenda

import (
	"errors"
	"net/http"

	"github.com/lab-agenda/turnero-service/internal/api/handlers"
	"github.com/lab-agenda/turnero-service/internal/api/middleware"
	"github.com/lab-agenda/turnero-service/internal/service/agendas"
	"github.com/lab-agenda/turnero-service/internal/service/agendas/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgAgendaExists       = "ya existe una agenda con ese slug"
	msgInvalidInput       = "datos de la agenda inválidos"
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

// Handle POST /api/v1/agendas
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAgendaRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /agendas - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req.Usuario = middleware.UsuarioFromContext(r.Context())

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, agendas.ErrAgendaExists):
			h.logger.Warn("POST /agendas - Agenda already exists: slug=%s", req.Slug)
			handlers.RespondError(w, http.StatusConflict, msgAgendaExists)

		case errors.Is(err, agendas.ErrInvalidInput):
			h.logger.Warn("POST /agendas - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /agendas - Failed to create agenda: slug=%s, error=%v", req.Slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /agendas - Agenda created successfully: agenda_id=%d, slug=%s", result.ID, result.Slug)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
