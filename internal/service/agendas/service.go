package agendas

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/zapvenda/ZV-AgendaService/internal/domain"
	agendaRepo "github.com/zapvenda/ZV-AgendaService/internal/infra/storage/agenda"
	"github.com/zapvenda/ZV-AgendaService/internal/service/agendas/models"
	"github.com/zapvenda/ZV-AgendaService/pkg/types"
)

// Service сервис для работы с конфигурациями агенд (админка дашборда)
type Service struct {
	agendaRepo AgendaRepository
	validate   *validator.Validate
	logger     Logger
}

// NewService создает новый экземпляр сервиса агенд
func NewService(agendaRepo AgendaRepository, logger Logger) *Service {
	return &Service{
		agendaRepo: agendaRepo,
		validate:   validator.New(),
		logger:     logger,
	}
}

// Create создает новую агенду
func (s *Service) Create(ctx context.Context, req *models.SaveAgendaRequest) (*models.AgendaResponse, error) {
	s.logger.Info("Create: creating agenda %q for organization=%d", req.Name, req.OrganizationID)

	if err := s.validateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed for organization=%d: %v", req.OrganizationID, err)
		return nil, err
	}

	created, err := s.agendaRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error for organization=%d: %v", req.OrganizationID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created agenda id=%d", created.ID)
	return models.FromDomainAgenda(created), nil
}

// GetByID получает агенду по ID с проверкой принадлежности организации
func (s *Service) GetByID(ctx context.Context, id int64, organizationID int64) (*models.AgendaResponse, error) {
	s.logger.Info("GetByID: fetching agenda id=%d for organization=%d", id, organizationID)

	agenda, err := s.fetchScoped(ctx, id, organizationID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainAgenda(agenda), nil
}

// ListByOrganization получает агенды организации
func (s *Service) ListByOrganization(ctx context.Context, organizationID int64, activeOnly bool) (*models.AgendaListResponse, error) {
	s.logger.Info("ListByOrganization: fetching agendas for organization=%d", organizationID)

	agendas, err := s.agendaRepo.ListByOrganization(ctx, organizationID, activeOnly)
	if err != nil {
		s.logger.Error("ListByOrganization: repository error for organization=%d: %v", organizationID, err)
		return nil, fmt.Errorf("%w: ListByOrganization - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAgendaList(agendas), nil
}

// Update полностью обновляет конфигурацию агенды.
// Слоты нигде не кешируются, поэтому изменение вступает в силу немедленно -
// следующий запрос доступности считается уже по новым правилам.
func (s *Service) Update(ctx context.Context, id int64, req *models.SaveAgendaRequest) (*models.AgendaResponse, error) {
	s.logger.Info("Update: updating agenda id=%d for organization=%d", id, req.OrganizationID)

	if err := s.validateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed for agenda id=%d: %v", id, err)
		return nil, err
	}

	existing, err := s.fetchScoped(ctx, id, req.OrganizationID)
	if err != nil {
		return nil, err
	}

	agenda := req.ToDomain()
	agenda.ID = existing.ID
	agenda.OrganizationID = existing.OrganizationID

	updated, err := s.agendaRepo.Update(ctx, agenda)
	if err != nil {
		if errors.Is(err, agendaRepo.ErrAgendaNotFound) {
			return nil, ErrAgendaNotFound
		}
		s.logger.Error("Update: repository error for agenda id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated agenda id=%d", id)
	return models.FromDomainAgenda(updated), nil
}

// fetchScoped получает агенду и проверяет принадлежность организации
func (s *Service) fetchScoped(ctx context.Context, id int64, organizationID int64) (*domain.AgendaConfig, error) {
	agenda, err := s.agendaRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, agendaRepo.ErrAgendaNotFound) {
			s.logger.Warn("fetchScoped: agenda id=%d not found", id)
			return nil, ErrAgendaNotFound
		}
		s.logger.Error("fetchScoped: repository error for agenda id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if agenda.OrganizationID != organizationID {
		s.logger.Warn("fetchScoped: agenda id=%d does not belong to organization=%d", id, organizationID)
		return nil, ErrAccessDenied
	}

	return agenda, nil
}

// validateRequest проверяет запрос: сначала структурные теги, затем
// инварианты, которые тегами не выражаются (формат HH:MM, start < end на
// включенных днях и перерывах, разрешимость таймзоны)
func (s *Service) validateRequest(req *models.SaveAgendaRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if req.Timezone != "" {
		if _, err := time.LoadLocation(req.Timezone); err != nil {
			return fmt.Errorf("%w: unknown timezone %q", ErrInvalidConfig, req.Timezone)
		}
	}

	days := []struct {
		name  string
		input models.DayScheduleInput
	}{
		{"monday", req.WorkingHours.Monday},
		{"tuesday", req.WorkingHours.Tuesday},
		{"wednesday", req.WorkingHours.Wednesday},
		{"thursday", req.WorkingHours.Thursday},
		{"friday", req.WorkingHours.Friday},
		{"saturday", req.WorkingHours.Saturday},
		{"sunday", req.WorkingHours.Sunday},
	}

	for _, day := range days {
		if !day.input.Enabled {
			continue
		}
		if err := validateWallWindow(day.input.Start, day.input.End); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, day.name, err)
		}
	}

	for i, b := range req.Breaks {
		if err := validateWallWindow(b.Start, b.End); err != nil {
			return fmt.Errorf("%w: break #%d: %v", ErrInvalidConfig, i+1, err)
		}
	}

	return nil
}

// validateWallWindow проверяет пару настенных времен: формат и start < end
func validateWallWindow(start, end string) error {
	startWT, err := types.NewWallTimeFromString(start)
	if err != nil {
		return err
	}
	endWT, err := types.NewWallTimeFromString(end)
	if err != nil {
		return err
	}
	if !startWT.IsBefore(endWT) {
		return fmt.Errorf("start %s must be before end %s", start, end)
	}
	return nil
}
