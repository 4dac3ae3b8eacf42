package create_appointment

import (
	"errors"
	"net/http"

	"github.com/zapvenda/ZV-AgendaService/internal/api/handlers"
	"github.com/zapvenda/ZV-AgendaService/internal/api/middleware"
	createAppointment "github.com/zapvenda/ZV-AgendaService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidTime         = "invalid time, expected RFC3339 timestamp"
	msgAgendaNotFound      = "agenda not found"
	msgAgendaInactive      = "agenda is not active"
	msgClientResolution    = "failed to resolve client"
	msgSlotTaken           = "slot already booked"
	msgTooSoon             = "appointment start violates the minimum advance window"
	msgTooFar              = "appointment start is too far in advance"
	msgOutsideWorkingHours = "appointment is outside working hours"
	msgBreakConflict       = "appointment overlaps a scheduled break"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	organizationID, _ := middleware.OrganizationIDFromContext(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(organizationID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: agenda_id=%d, organization_id=%d",
				req.AgendaID, organizationID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrAgendaNotFound):
			h.logger.Warn("POST /appointments - Agenda not found: agenda_id=%d", req.AgendaID)
			handlers.RespondNotFound(w, msgAgendaNotFound)

		case errors.Is(err, createAppointment.ErrAgendaInactive):
			h.logger.Warn("POST /appointments - Agenda inactive: agenda_id=%d", req.AgendaID)
			handlers.RespondNotFound(w, msgAgendaInactive)

		case errors.Is(err, createAppointment.ErrTooSoon):
			h.logger.Warn("POST /appointments - Too soon: agenda_id=%d", req.AgendaID)
			handlers.RespondBadRequest(w, msgTooSoon)

		case errors.Is(err, createAppointment.ErrTooFar):
			h.logger.Warn("POST /appointments - Too far in advance: agenda_id=%d", req.AgendaID)
			handlers.RespondBadRequest(w, msgTooFar)

		case errors.Is(err, createAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("POST /appointments - Outside working hours: agenda_id=%d", req.AgendaID)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createAppointment.ErrBreakConflict):
			h.logger.Warn("POST /appointments - Break conflict: agenda_id=%d", req.AgendaID)
			handlers.RespondBadRequest(w, msgBreakConflict)

		case errors.Is(err, createAppointment.ErrClientResolution):
			h.logger.Error("POST /appointments - Client resolution failed: agenda_id=%d, error=%v",
				req.AgendaID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgClientResolution)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: agenda_id=%d, error=%v",
				req.AgendaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, agenda_id=%d",
		result.ID, req.AgendaID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
