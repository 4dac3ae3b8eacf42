package get_agenda_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/zapvenda/ZV-AgendaService/internal/api/handlers"
	"github.com/zapvenda/ZV-AgendaService/internal/api/middleware"
	"github.com/zapvenda/ZV-AgendaService/internal/service/appointments"
	"github.com/zapvenda/ZV-AgendaService/internal/service/appointments/models"
)

const (
	msgInvalidAgendaID = "invalid agenda id"
	msgInvalidPeriod   = "invalid from/to, expected RFC3339 timestamps"
	msgInvalidStatus   = "unknown appointment status"
	msgAgendaNotFound  = "agenda not found"
	msgAccessDenied    = "access to this agenda is denied"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/agendas/{agendaId}/appointments?from=&to=&status=&includeCancelled=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	agendaID, err := strconv.ParseInt(mux.Vars(r)["agendaId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /agendas/{agendaId}/appointments - Invalid agenda id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAgendaID)
		return
	}

	query := r.URL.Query()

	from, err := parseOptionalTime(query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /agendas/%d/appointments - Invalid from: %v", agendaID, err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	to, err := parseOptionalTime(query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /agendas/%d/appointments - Invalid to: %v", agendaID, err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	var status *string
	if raw := query.Get("status"); raw != "" {
		status = &raw
	}

	includeCancelled := query.Get("includeCancelled") == "true"

	organizationID, _ := middleware.OrganizationIDFromContext(r.Context())

	result, err := h.service.ListByAgenda(r.Context(), &models.ListAgendaAppointmentsRequest{
		OrganizationID:   organizationID,
		AgendaID:         agendaID,
		From:             from,
		To:               to,
		Status:           status,
		IncludeCancelled: includeCancelled,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /agendas/%d/appointments - Agenda not found", agendaID)
			handlers.RespondNotFound(w, msgAgendaNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /agendas/%d/appointments - Access denied for organization=%d",
				agendaID, organizationID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /agendas/%d/appointments - Invalid status filter", agendaID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /agendas/%d/appointments - Failed to list appointments: %v", agendaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /agendas/%d/appointments - Returned %d appointments", agendaID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

func parseOptionalTime(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
