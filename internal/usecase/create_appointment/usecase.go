package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/zapvenda/ZV-AgendaService/internal/domain"
	"github.com/zapvenda/ZV-AgendaService/internal/events"
	agendaRepo "github.com/zapvenda/ZV-AgendaService/internal/infra/storage/agenda"
	apptRepo "github.com/zapvenda/ZV-AgendaService/internal/infra/storage/appointment"
	"github.com/zapvenda/ZV-AgendaService/internal/schedule"
	"github.com/zapvenda/ZV-AgendaService/pkg/ptr"
)

// UseCase use case создания записи (write path).
//
// Авторитетный путь: все проверки расписания выполняются заново внутри
// сериализуемой транзакции по свежему срезу записей (FOR UPDATE), а не по
// ранее выданному списку слотов - это закрывает гонку между выдачей слотов
// и фиксацией записи. Exclusion constraint БД страхует на время коммита.
type UseCase struct {
	apptRepo     AppointmentRepository
	agendaRepo   AgendaRepository
	clientClient ClientServiceClient
	publisher    EventPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	agendaRepo AgendaRepository,
	clientClient ClientServiceClient,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		agendaRepo:   agendaRepo,
		clientClient: clientClient,
		publisher:    publisher,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: organization=%d, agenda=%d, start=%s, end=%s",
		req.OrganizationID, req.AgendaID, req.StartTime.Format(timeLayout), req.EndTime.Format(timeLayout))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время один раз; все проверки детерминированы
	// относительно него
	now := uc.timeProvider.Now()

	// 3. Находим или создаем клиента (вне транзакции - внешний вызов)
	client, err := uc.clientClient.ResolveByPhone(ctx, req.OrganizationID, clientName(req), req.ClientPhone)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to resolve client: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrClientResolution, err)
	}

	var result *domain.Appointment
	var agenda *domain.AgendaConfig

	// 4. Проверки расписания и вставка - в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем агенду
		var err error
		agenda, err = uc.agendaRepo.GetByID(txCtx, req.AgendaID)
		if err != nil {
			if errors.Is(err, agendaRepo.ErrAgendaNotFound) {
				uc.logger.Warn("CreateAppointment: agenda id=%d not found", req.AgendaID)
				return ErrAgendaNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get agenda id=%d: %v", req.AgendaID, err)
			return fmt.Errorf("%w: failed to get agenda: %v", ErrInternal, err)
		}

		if agenda.OrganizationID != req.OrganizationID {
			uc.logger.Warn("CreateAppointment: agenda id=%d does not belong to organization=%d",
				req.AgendaID, req.OrganizationID)
			return ErrAgendaNotFound
		}

		if !agenda.IsActive {
			uc.logger.Warn("CreateAppointment: agenda id=%d is inactive", req.AgendaID)
			return ErrAgendaInactive
		}

		loc, err := agenda.Location()
		if err != nil {
			uc.logger.Error("CreateAppointment: agenda id=%d has invalid timezone %q: %v",
				req.AgendaID, agenda.Timezone, err)
			return fmt.Errorf("%w: invalid agenda timezone: %v", ErrInternal, err)
		}

		// 4.2. Перечитываем записи дня с блокировкой FOR UPDATE.
		// Именно этот свежий срез, а не ранее выданный список слотов,
		// участвует в проверке конфликтов.
		dayStart, dayEnd := schedule.DayBounds(req.StartTime.In(loc), loc)
		appointments, err := uc.apptRepo.GetByAgendaWithFilter(txCtx, domain.AgendaAppointmentsFilter{
			AgendaID:         req.AgendaID,
			From:             ptr.Ptr(dayStart),
			To:               ptr.Ptr(dayEnd),
			IncludeCancelled: false,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 4.3. Авторитетная проверка против правил агенды и живых записей
		if err := schedule.ValidateBooking(agenda, req.StartTime, req.EndTime, now, appointments, loc); err != nil {
			uc.logger.Warn("CreateAppointment: booking validation failed for agenda=%d: %v", req.AgendaID, err)
			return mapScheduleError(err)
		}

		// 4.4. Создаем запись со статусом scheduled
		appt := &domain.Appointment{
			AgendaID:       ptr.Ptr(req.AgendaID),
			OrganizationID: req.OrganizationID,
			ClientID:       client.ID,
			StartTime:      req.StartTime.UTC(),
			EndTime:        req.EndTime.UTC(),
			Status:         domain.StatusScheduled,
			Title:          appointmentTitle(req),
			Description:    req.Description,
			Location:       req.Location,
			Notes:          req.Notes,
		}

		created, err := uc.apptRepo.Create(txCtx, appt)
		if err != nil {
			// Гонка, дожившая до коммита: constraint БД отклонил вставку
			if errors.Is(err, apptRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: slot taken at commit time for agenda=%d", req.AgendaID)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// 5. Публикуем событие для сервиса уведомлений; его сбой не отменяет
	// уже зафиксированную запись
	evt := events.NewAppointmentEvent(events.EventAppointmentCreated, result, agenda, now)
	if err := uc.publisher.PublishAppointmentEvent(ctx, evt); err != nil {
		uc.logger.Error("CreateAppointment: failed to publish created event for id=%d: %v", result.ID, err)
	}

	return &Response{
		ID:             result.ID,
		AgendaID:       result.AgendaID,
		OrganizationID: result.OrganizationID,
		ClientID:       result.ClientID,
		StartTime:      result.StartTime,
		EndTime:        result.EndTime,
		Status:         string(result.Status),
		Title:          result.Title,
		Description:    result.Description,
		Location:       result.Location,
		Notes:          result.Notes,
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}

// mapScheduleError транслирует ошибки пакета schedule в ошибки usecase
func mapScheduleError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrTooSoon):
		return ErrTooSoon
	case errors.Is(err, schedule.ErrTooFar):
		return ErrTooFar
	case errors.Is(err, schedule.ErrOutsideWorkingHours):
		return ErrOutsideWorkingHours
	case errors.Is(err, schedule.ErrBreakConflict):
		return ErrBreakConflict
	case errors.Is(err, schedule.ErrBookingConflict):
		return ErrSlotTaken
	case errors.Is(err, schedule.ErrInvalidInterval):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

// clientName возвращает имя для создания нового клиента
func clientName(req *Request) string {
	if req.ClientName != nil {
		return *req.ClientName
	}
	return ""
}

// appointmentTitle возвращает заголовок записи (по умолчанию - пустой)
func appointmentTitle(req *Request) string {
	if req.Title != nil {
		return *req.Title
	}
	return ""
}
