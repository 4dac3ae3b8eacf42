package update_agenda

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/zapvenda/ZV-AgendaService/internal/api/handlers"
	"github.com/zapvenda/ZV-AgendaService/internal/api/middleware"
	"github.com/zapvenda/ZV-AgendaService/internal/service/agendas"
)

const (
	msgInvalidAgendaID    = "invalid agenda id"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidConfig      = "invalid agenda configuration"
	msgAgendaNotFound     = "agenda not found"
	msgAccessDenied       = "access to this agenda is denied"
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

// Handle PUT /api/v1/agendas/{agendaId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	agendaID, err := strconv.ParseInt(mux.Vars(r)["agendaId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /agendas/{agendaId} - Invalid agenda id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAgendaID)
		return
	}

	var req UpdateAgendaRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /agendas/%d - Invalid request body: %v", agendaID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	organizationID, _ := middleware.OrganizationIDFromContext(r.Context())

	result, err := h.service.Update(r.Context(), agendaID, req.ToServiceRequest(organizationID))
	if err != nil {
		switch {
		case errors.Is(err, agendas.ErrAgendaNotFound):
			h.logger.Warn("PUT /agendas/%d - Agenda not found", agendaID)
			handlers.RespondNotFound(w, msgAgendaNotFound)

		case errors.Is(err, agendas.ErrAccessDenied):
			h.logger.Warn("PUT /agendas/%d - Access denied for organization=%d", agendaID, organizationID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, agendas.ErrInvalidConfig):
			h.logger.Warn("PUT /agendas/%d - Invalid config: %v", agendaID, err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		default:
			h.logger.Error("PUT /agendas/%d - Failed to update agenda: %v", agendaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /agendas/%d - Agenda updated successfully", agendaID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
