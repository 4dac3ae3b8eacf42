package list_agendas

import (
	"net/http"

	"github.com/zapvenda/ZV-AgendaService/internal/api/handlers"
	"github.com/zapvenda/ZV-AgendaService/internal/api/middleware"
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

// Handle GET /api/v1/agendas?activeOnly=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	organizationID, _ := middleware.OrganizationIDFromContext(r.Context())
	activeOnly := r.URL.Query().Get("activeOnly") == "true"

	result, err := h.service.ListByOrganization(r.Context(), organizationID, activeOnly)
	if err != nil {
		h.logger.Error("GET /agendas - Failed to list agendas: organization=%d, error=%v",
			organizationID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /agendas - Returned %d agendas for organization=%d", result.Total, organizationID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
