package cancel_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/zapvenda/ZV-AgendaService/internal/api/handlers"
	"github.com/zapvenda/ZV-AgendaService/internal/api/middleware"
	"github.com/zapvenda/ZV-AgendaService/internal/service/appointments"
	"github.com/zapvenda/ZV-AgendaService/internal/service/appointments/models"
)

const (
	msgInvalidAppointmentID = "invalid appointment id"
	msgAppointmentNotFound  = "appointment not found"
	msgAccessDenied         = "access to this appointment is denied"
	msgCannotCancel         = "appointment cannot be cancelled in its current status"
)

// CancelRequest HTTP request model
type CancelRequest struct {
	Reason string `json:"reason,omitempty"`
}

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

// Handle PATCH /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{appointmentId}/cancel - Invalid appointment id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	// Причина отмены опциональна, пустое тело допустимо
	var req CancelRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("PATCH /appointments/%d/cancel - Invalid request body: %v", appointmentID, err)
			handlers.RespondBadRequest(w, "invalid request body")
			return
		}
	}

	organizationID, _ := middleware.OrganizationIDFromContext(r.Context())

	err = h.service.Cancel(r.Context(), appointmentID, &models.CancelAppointmentRequest{
		OrganizationID: organizationID,
		Reason:         req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/%d/cancel - Appointment not found", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/%d/cancel - Access denied for organization=%d", appointmentID, organizationID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, appointments.ErrInvalidTransition):
			h.logger.Warn("PATCH /appointments/%d/cancel - Cannot cancel in current status", appointmentID)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /appointments/%d/cancel - Failed to cancel appointment: %v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/%d/cancel - Appointment cancelled successfully", appointmentID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
