package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/zapvenda/ZV-AgendaService/internal/api/handlers"
	"github.com/zapvenda/ZV-AgendaService/internal/api/middleware"
	"github.com/zapvenda/ZV-AgendaService/internal/domain"
	getSlots "github.com/zapvenda/ZV-AgendaService/internal/usecase/get_available_slots"
)

const (
	msgInvalidAgendaID = "invalid agenda id"
	msgInvalidDate     = "invalid date, expected YYYY-MM-DD"
	msgInvalidDuration = "invalid duration, expected positive integer minutes"
	msgAgendaNotFound  = "agenda not found"
	msgAgendaInactive  = "agenda is not active"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/agendas/{agendaId}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	agendaID, err := strconv.ParseInt(mux.Vars(r)["agendaId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /agendas/{agendaId}/available-slots - Invalid agenda id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAgendaID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /agendas/%d/available-slots - Invalid date: %v", agendaID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var duration *int
	if raw := r.URL.Query().Get("duration"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value <= 0 {
			h.logger.Warn("GET /agendas/%d/available-slots - Invalid duration: %q", agendaID, raw)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
		duration = &value
	}

	organizationID, _ := middleware.OrganizationIDFromContext(r.Context())

	result, err := h.useCase.Execute(r.Context(), &getSlots.Request{
		OrganizationID:  organizationID,
		AgendaID:        agendaID,
		Date:            date,
		DurationMinutes: duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, getSlots.ErrAgendaNotFound):
			h.logger.Warn("GET /agendas/%d/available-slots - Agenda not found", agendaID)
			handlers.RespondNotFound(w, msgAgendaNotFound)

		case errors.Is(err, getSlots.ErrAgendaInactive):
			h.logger.Warn("GET /agendas/%d/available-slots - Agenda inactive", agendaID)
			handlers.RespondNotFound(w, msgAgendaInactive)

		case errors.Is(err, getSlots.ErrInvalidInput):
			h.logger.Warn("GET /agendas/%d/available-slots - Invalid input: %v", agendaID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /agendas/%d/available-slots - Failed to get slots: %v", agendaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /agendas/%d/available-slots - Returned %d slots for date=%s",
		agendaID, len(result.Slots), result.Date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
