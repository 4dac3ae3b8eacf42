package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/zapvenda/ZV-AgendaService/internal/domain"
	agendaRepo "github.com/zapvenda/ZV-AgendaService/internal/infra/storage/agenda"
	"github.com/zapvenda/ZV-AgendaService/internal/schedule"
	"github.com/zapvenda/ZV-AgendaService/pkg/ptr"
)

// UseCase use case получения доступных слотов (read path).
//
// Список слотов - оптимистичная выдача для UI: авторитетная проверка
// выполняется usecase create_appointment по тем же правилам из пакета
// schedule, поэтому выдача и проверка не могут разъехаться.
type UseCase struct {
	agendaRepo AgendaRepository
	apptRepo   AppointmentRepository
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(agendaRepo AgendaRepository, apptRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		agendaRepo: agendaRepo,
		apptRepo:   apptRepo,
		logger:     logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: organization=%d, agenda=%d, date=%s",
		req.OrganizationID, req.AgendaID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем агенду: она должна существовать, принадлежать организации
	// вызывающего и быть активной
	agenda, err := uc.agendaRepo.GetByID(ctx, req.AgendaID)
	if err != nil {
		if errors.Is(err, agendaRepo.ErrAgendaNotFound) {
			uc.logger.Warn("GetAvailableSlots: agenda id=%d not found", req.AgendaID)
			return nil, ErrAgendaNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get agenda id=%d: %v", req.AgendaID, err)
		return nil, fmt.Errorf("%w: failed to get agenda: %v", ErrInternal, err)
	}

	if agenda.OrganizationID != req.OrganizationID {
		uc.logger.Warn("GetAvailableSlots: agenda id=%d does not belong to organization=%d",
			req.AgendaID, req.OrganizationID)
		return nil, ErrAgendaNotFound
	}

	if !agenda.IsActive {
		uc.logger.Info("GetAvailableSlots: agenda id=%d is inactive", req.AgendaID)
		return nil, ErrAgendaInactive
	}

	loc, err := agenda.Location()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: agenda id=%d has invalid timezone %q: %v",
			req.AgendaID, agenda.Timezone, err)
		return nil, fmt.Errorf("%w: invalid agenda timezone: %v", ErrInternal, err)
	}

	// 3. Получаем неотмененные записи, пересекающиеся с календарным днем
	// в зоне агенды
	dayStart, dayEnd := schedule.DayBounds(req.Date, loc)
	appointments, err := uc.apptRepo.GetByAgendaWithFilter(ctx, domain.AgendaAppointmentsFilter{
		AgendaID:         req.AgendaID,
		From:             ptr.Ptr(dayStart),
		To:               ptr.Ptr(dayEnd),
		IncludeCancelled: false,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments for agenda=%d: %v", req.AgendaID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 4. Генерируем слоты
	slots := schedule.GenerateSlots(agenda, req.Date, appointments, loc)

	uc.logger.Info("GetAvailableSlots: generated %d slots for agenda=%d, date=%s",
		len(slots), req.AgendaID, req.Date.Format(domain.DateFormat))

	return &Response{
		AgendaID: req.AgendaID,
		Date:     req.Date,
		Timezone: agenda.Timezone,
		Slots:    slots,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.OrganizationID <= 0 {
		return fmt.Errorf("%w: organizationID must be positive", ErrInvalidInput)
	}

	if req.AgendaID <= 0 {
		return fmt.Errorf("%w: agendaID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes != nil && *req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}

	return nil
}
