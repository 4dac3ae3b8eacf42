package create_agenda

import (
	"errors"
	"net/http"

	"github.com/zapvenda/ZV-AgendaService/internal/api/handlers"
	"github.com/zapvenda/ZV-AgendaService/internal/api/middleware"
	"github.com/zapvenda/ZV-AgendaService/internal/service/agendas"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidConfig      = "invalid agenda configuration"
)

type Handler struct {
	service AgendasService
	logger  Logger
}

func NewHandler(service AgendasService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/agendas
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAgendaRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /agendas - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	organizationID, _ := middleware.OrganizationIDFromContext(r.Context())

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(organizationID))
	if err != nil {
		switch {
		case errors.Is(err, agendas.ErrInvalidConfig):
			h.logger.Warn("POST /agendas - Invalid config for organization=%d: %v", organizationID, err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		default:
			h.logger.Error("POST /agendas - Failed to create agenda: organization=%d, error=%v",
				organizationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /agendas - Agenda created successfully: agenda_id=%d, organization=%d",
		result.ID, organizationID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
