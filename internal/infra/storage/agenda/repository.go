package agenda

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/zapvenda/ZV-AgendaService/internal/domain"
	"github.com/zapvenda/ZV-AgendaService/pkg/dbmetrics"
	"github.com/zapvenda/ZV-AgendaService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с конфигурациями агенд
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория агенд
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var agendaColumns = []string{
	"id",
	"organization_id",
	"name",
	"color",
	"slot_duration_minutes",
	"buffer_minutes",
	"min_advance_hours",
	"max_advance_days",
	"timezone",
	"working_hours",
	"breaks",
	"reminder_hours_before",
	"send_confirmation",
	"is_active",
	"created_at",
	"updated_at",
}

// Create создает новую агенду. Рабочие часы и перерывы сериализуются в JSONB.
func (r *Repository) Create(ctx context.Context, agenda *domain.AgendaConfig) (*domain.AgendaConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	workingHours, breaks, err := encodeSchedule(agenda)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("agenda_configs").
		Columns(
			"organization_id",
			"name",
			"color",
			"slot_duration_minutes",
			"buffer_minutes",
			"min_advance_hours",
			"max_advance_days",
			"timezone",
			"working_hours",
			"breaks",
			"reminder_hours_before",
			"send_confirmation",
			"is_active",
		).
		Values(
			agenda.OrganizationID,
			agenda.Name,
			agenda.Color,
			agenda.SlotDurationMinutes,
			agenda.BufferMinutes,
			agenda.MinAdvanceHours,
			agenda.MaxAdvanceDays,
			agenda.Timezone,
			workingHours,
			breaks,
			agenda.ReminderHoursBefore,
			agenda.SendConfirmation,
			agenda.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&agenda.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	agenda.CreatedAt = createdAt.Time
	agenda.UpdatedAt = updatedAt.Time

	return agenda, nil
}

// GetByID получает агенду по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AgendaConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(agendaColumns...).
		From("agenda_configs").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanAgenda(executor.QueryRowContext(ctx, query, args...))
}

// ListByOrganization получает все агенды организации
// activeOnly ограничивает выборку активными агендами
func (r *Repository) ListByOrganization(ctx context.Context, organizationID int64, activeOnly bool) ([]*domain.AgendaConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(agendaColumns...).
		From("agenda_configs").
		Where(squirrel.Eq{"organization_id": organizationID}).
		OrderBy("name ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOrganization - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOrganization - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	agendas := make([]*domain.AgendaConfig, 0)
	for rows.Next() {
		agenda, err := r.scanAgendaRow(rows)
		if err != nil {
			return nil, err
		}
		agendas = append(agendas, agenda)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByOrganization - iterate rows: %v", ErrScanRow, err)
	}

	return agendas, nil
}

// Update обновляет конфигурацию агенды целиком
func (r *Repository) Update(ctx context.Context, agenda *domain.AgendaConfig) (*domain.AgendaConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	workingHours, breaks, err := encodeSchedule(agenda)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Update("agenda_configs").
		Set("name", agenda.Name).
		Set("color", agenda.Color).
		Set("slot_duration_minutes", agenda.SlotDurationMinutes).
		Set("buffer_minutes", agenda.BufferMinutes).
		Set("min_advance_hours", agenda.MinAdvanceHours).
		Set("max_advance_days", agenda.MaxAdvanceDays).
		Set("timezone", agenda.Timezone).
		Set("working_hours", workingHours).
		Set("breaks", breaks).
		Set("reminder_hours_before", agenda.ReminderHoursBefore).
		Set("send_confirmation", agenda.SendConfirmation).
		Set("is_active", agenda.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": agenda.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrAgendaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	agenda.UpdatedAt = updatedAt.Time
	return agenda, nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanAgenda(row *sql.Row) (*domain.AgendaConfig, error) {
	agenda, err := r.scanAgendaRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrAgendaNotFound
	}
	return agenda, err
}

func (r *Repository) scanAgendaRow(row rowScanner) (*domain.AgendaConfig, error) {
	var agenda domain.AgendaConfig
	var workingHours, breaks []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&agenda.ID,
		&agenda.OrganizationID,
		&agenda.Name,
		&agenda.Color,
		&agenda.SlotDurationMinutes,
		&agenda.BufferMinutes,
		&agenda.MinAdvanceHours,
		&agenda.MaxAdvanceDays,
		&agenda.Timezone,
		&workingHours,
		&breaks,
		&agenda.ReminderHoursBefore,
		&agenda.SendConfirmation,
		&agenda.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, sql.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan agenda: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(workingHours, &agenda.WorkingHours); err != nil {
		return nil, fmt.Errorf("%w: decode working_hours: %v", ErrEncode, err)
	}
	agenda.Breaks = make([]domain.BreakWindow, 0)
	if len(breaks) > 0 {
		if err := json.Unmarshal(breaks, &agenda.Breaks); err != nil {
			return nil, fmt.Errorf("%w: decode breaks: %v", ErrEncode, err)
		}
	}

	agenda.CreatedAt = createdAt.Time
	agenda.UpdatedAt = updatedAt.Time

	return &agenda, nil
}

// encodeSchedule сериализует рабочие часы и перерывы для JSONB колонок
func encodeSchedule(agenda *domain.AgendaConfig) ([]byte, []byte, error) {
	workingHours, err := json.Marshal(agenda.WorkingHours)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: encode working_hours: %v", ErrEncode, err)
	}

	breaks, err := json.Marshal(agenda.Breaks)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: encode breaks: %v", ErrEncode, err)
	}

	return workingHours, breaks, nil
}
