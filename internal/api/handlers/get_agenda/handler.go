package get_agenda

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
	msgInvalidAgendaID = "invalid agenda id"
	msgAgendaNotFound  = "agenda not found"
	msgAccessDenied    = "access to this agenda is denied"
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

// Handle GET /api/v1/agendas/{agendaId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	agendaID, err := strconv.ParseInt(mux.Vars(r)["agendaId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /agendas/{agendaId} - Invalid agenda id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAgendaID)
		return
	}

	organizationID, _ := middleware.OrganizationIDFromContext(r.Context())

	result, err := h.service.GetByID(r.Context(), agendaID, organizationID)
	if err != nil {
		switch {
		case errors.Is(err, agendas.ErrAgendaNotFound):
			h.logger.Warn("GET /agendas/%d - Agenda not found", agendaID)
			handlers.RespondNotFound(w, msgAgendaNotFound)

		case errors.Is(err, agendas.ErrAccessDenied):
			h.logger.Warn("GET /agendas/%d - Access denied for organization=%d", agendaID, organizationID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /agendas/%d - Failed to get agenda: %v", agendaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /agendas/%d - Agenda fetched successfully", agendaID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
