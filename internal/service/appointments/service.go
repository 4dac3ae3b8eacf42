package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/zapvenda/ZV-AgendaService/internal/domain"
	"github.com/zapvenda/ZV-AgendaService/internal/events"
	apptRepo "github.com/zapvenda/ZV-AgendaService/internal/infra/storage/appointment"
	"github.com/zapvenda/ZV-AgendaService/internal/service/appointments/models"
)

// Service сервис для работы с записями: просмотр, история, отмена и переходы
// статусов. Создание записей живет в usecase create_appointment - там
// авторитетная валидация расписания и сериализуемая транзакция.
type Service struct {
	apptRepo     AppointmentRepository
	agendaRepo   AgendaRepository
	publisher    EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	apptRepo AppointmentRepository,
	agendaRepo AgendaRepository,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		apptRepo:     apptRepo,
		agendaRepo:   agendaRepo,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает запись по ID с проверкой принадлежности организации
func (s *Service) GetByID(ctx context.Context, id int64, organizationID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for organization=%d", id, organizationID)

	appt, err := s.fetchScoped(ctx, id, organizationID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainAppointment(appt), nil
}

// ListByAgenda получает записи агенды за период с фильтрацией по статусу.
// IncludeCancelled добавляет отмененные записи (история для дашборда).
func (s *Service) ListByAgenda(ctx context.Context, req *models.ListAgendaAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListByAgenda: fetching appointments for agenda=%d, organization=%d",
		req.AgendaID, req.OrganizationID)

	// Агенда должна существовать и принадлежать организации
	agenda, err := s.agendaRepo.GetByID(ctx, req.AgendaID)
	if err != nil {
		s.logger.Warn("ListByAgenda: agenda id=%d not found: %v", req.AgendaID, err)
		return nil, ErrAppointmentNotFound
	}
	if agenda.OrganizationID != req.OrganizationID {
		s.logger.Warn("ListByAgenda: agenda id=%d does not belong to organization=%d",
			req.AgendaID, req.OrganizationID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListByAgenda: invalid filter for agenda=%d: %v", req.AgendaID, err)
		return nil, fmt.Errorf("%w: invalid status filter", ErrInvalidInput)
	}

	appointments, err := s.apptRepo.GetByAgendaWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListByAgenda: repository error for agenda=%d: %v", req.AgendaID, err)
		return nil, fmt.Errorf("%w: ListByAgenda - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByAgenda: successfully fetched %d appointments for agenda=%d",
		len(appointments), req.AgendaID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись. Отмененная запись сохраняется для истории и
// перестает блокировать свой интервал. Повторная отмена и отмена завершенных
// записей запрещены конечным автоматом статусов.
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	appt, err := s.fetchScoped(ctx, id, req.OrganizationID)
	if err != nil {
		return err
	}

	now := s.timeProvider.Now()
	if !appt.CanTransitionTo(domain.StatusCancelled, now) {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", id, appt.Status)
		return ErrInvalidTransition
	}

	if err := s.apptRepo.Cancel(ctx, id, req.Reason); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	appt.Status = domain.StatusCancelled
	s.publishEvent(ctx, events.EventAppointmentCancelled, appt, nil)

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return nil
}

// UpdateStatus переводит запись в новый статус с проверкой конечного автомата:
// scheduled -> confirmed -> completed; scheduled/confirmed -> cancelled/no_show
// (no_show только после окончания записи). Терминальные статусы неизменяемы.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s", id, req.Status)

	newStatus, ok := domain.ParseAppointmentStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, id)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	appt, err := s.fetchScoped(ctx, id, req.OrganizationID)
	if err != nil {
		return err
	}

	now := s.timeProvider.Now()
	if !appt.CanTransitionTo(newStatus, now) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for appointment id=%d",
			appt.Status, newStatus, id)
		return ErrInvalidTransition
	}

	if err := s.apptRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	previous := string(appt.Status)
	appt.Status = newStatus
	s.publishEvent(ctx, events.EventAppointmentStatusChanged, appt, &previous)

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", id, newStatus)
	return nil
}

// fetchScoped получает запись и проверяет принадлежность организации
func (s *Service) fetchScoped(ctx context.Context, id int64, organizationID int64) (*domain.Appointment, error) {
	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("fetchScoped: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("fetchScoped: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if appt.OrganizationID != organizationID {
		s.logger.Warn("fetchScoped: appointment id=%d does not belong to organization=%d", id, organizationID)
		return nil, ErrAccessDenied
	}

	return appt, nil
}

// publishEvent публикует событие по записи; ошибка публикации не роняет
// операцию - событие вторично по отношению к уже зафиксированному изменению
func (s *Service) publishEvent(ctx context.Context, eventType string, appt *domain.Appointment, previousStatus *string) {
	var agenda *domain.AgendaConfig
	if appt.AgendaID != nil {
		a, err := s.agendaRepo.GetByID(ctx, *appt.AgendaID)
		if err != nil {
			s.logger.Warn("publishEvent: failed to load agenda id=%d for event: %v", *appt.AgendaID, err)
		} else {
			agenda = a
		}
	}

	evt := events.NewAppointmentEvent(eventType, appt, agenda, s.timeProvider.Now())
	evt.PreviousStatus = previousStatus

	if err := s.publisher.PublishAppointmentEvent(ctx, evt); err != nil {
		s.logger.Error("publishEvent: failed to publish %s for appointment id=%d: %v", eventType, appt.ID, err)
	}
}
