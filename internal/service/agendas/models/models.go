package models

import (
	"time"

	"github.com/zapvenda/ZV-AgendaService/internal/domain"
	"github.com/zapvenda/ZV-AgendaService/pkg/types"
)

// DayScheduleInput рабочее окно одного дня недели.
// Формат и порядок Start/End проверяются сервисом, а не тегами:
// правило "start < end" действует только на включенных днях.
type DayScheduleInput struct {
	Enabled bool
	Start   string // HH:MM
	End     string // HH:MM
}

// BreakInput повторяющийся перерыв
type BreakInput struct {
	Start string         `validate:"required"`
	End   string         `validate:"required"`
	Days  []time.Weekday `validate:"required,min=1,dive,min=0,max=6"`
}

// WeekScheduleInput рабочие окна всех дней недели
type WeekScheduleInput struct {
	Monday    DayScheduleInput
	Tuesday   DayScheduleInput
	Wednesday DayScheduleInput
	Thursday  DayScheduleInput
	Friday    DayScheduleInput
	Saturday  DayScheduleInput
	Sunday    DayScheduleInput
}

// SaveAgendaRequest запрос на создание или полное обновление агенды
type SaveAgendaRequest struct {
	OrganizationID int64  `validate:"required,gt=0"`
	Name           string `validate:"required,max=200"`
	Color          string `validate:"omitempty,hexcolor"`

	SlotDurationMinutes int `validate:"required,gte=5,lte=480"`
	BufferMinutes       int `validate:"gte=0,lte=240"`
	MinAdvanceHours     int `validate:"gte=0,lte=168"`
	MaxAdvanceDays      int `validate:"required,gte=1,lte=365"`

	Timezone string `validate:"omitempty,max=64"`

	WorkingHours WeekScheduleInput
	Breaks       []BreakInput

	ReminderHoursBefore int  `validate:"gte=0,lte=168"`
	SendConfirmation    bool
	IsActive            bool
}

// AgendaResponse модель агенды для вызывающего слоя
type AgendaResponse struct {
	ID             int64
	OrganizationID int64
	Name           string
	Color          string

	SlotDurationMinutes int
	BufferMinutes       int
	MinAdvanceHours     int
	MaxAdvanceDays      int

	Timezone     string
	WorkingHours domain.WeekSchedule
	Breaks       []domain.BreakWindow

	ReminderHoursBefore int
	SendConfirmation    bool
	IsActive            bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AgendaListResponse список агенд организации
type AgendaListResponse struct {
	Agendas []*AgendaResponse
	Total   int
}

// ToDomain собирает domain.AgendaConfig из запроса.
// Формат настенного времени здесь не проверяется - этим занимается сервис.
func (r *SaveAgendaRequest) ToDomain() *domain.AgendaConfig {
	timezone := r.Timezone
	if timezone == "" {
		timezone = domain.DefaultTimezone
	}

	breaks := make([]domain.BreakWindow, 0, len(r.Breaks))
	for _, b := range r.Breaks {
		breaks = append(breaks, domain.BreakWindow{
			Start: types.WallTime(b.Start),
			End:   types.WallTime(b.End),
			Days:  b.Days,
		})
	}

	return &domain.AgendaConfig{
		OrganizationID:      r.OrganizationID,
		Name:                r.Name,
		Color:               r.Color,
		SlotDurationMinutes: r.SlotDurationMinutes,
		BufferMinutes:       r.BufferMinutes,
		MinAdvanceHours:     r.MinAdvanceHours,
		MaxAdvanceDays:      r.MaxAdvanceDays,
		Timezone:            timezone,
		WorkingHours: domain.WeekSchedule{
			Monday:    r.WorkingHours.Monday.toDomain(),
			Tuesday:   r.WorkingHours.Tuesday.toDomain(),
			Wednesday: r.WorkingHours.Wednesday.toDomain(),
			Thursday:  r.WorkingHours.Thursday.toDomain(),
			Friday:    r.WorkingHours.Friday.toDomain(),
			Saturday:  r.WorkingHours.Saturday.toDomain(),
			Sunday:    r.WorkingHours.Sunday.toDomain(),
		},
		Breaks:              breaks,
		ReminderHoursBefore: r.ReminderHoursBefore,
		SendConfirmation:    r.SendConfirmation,
		IsActive:            r.IsActive,
	}
}

func (d DayScheduleInput) toDomain() domain.DaySchedule {
	return domain.DaySchedule{
		Enabled: d.Enabled,
		Start:   types.WallTime(d.Start),
		End:     types.WallTime(d.End),
	}
}

// FromDomainAgenda конвертирует domain.AgendaConfig в response модель
func FromDomainAgenda(agenda *domain.AgendaConfig) *AgendaResponse {
	return &AgendaResponse{
		ID:                  agenda.ID,
		OrganizationID:      agenda.OrganizationID,
		Name:                agenda.Name,
		Color:               agenda.Color,
		SlotDurationMinutes: agenda.SlotDurationMinutes,
		BufferMinutes:       agenda.BufferMinutes,
		MinAdvanceHours:     agenda.MinAdvanceHours,
		MaxAdvanceDays:      agenda.MaxAdvanceDays,
		Timezone:            agenda.Timezone,
		WorkingHours:        agenda.WorkingHours,
		Breaks:              agenda.Breaks,
		ReminderHoursBefore: agenda.ReminderHoursBefore,
		SendConfirmation:    agenda.SendConfirmation,
		IsActive:            agenda.IsActive,
		CreatedAt:           agenda.CreatedAt,
		UpdatedAt:           agenda.UpdatedAt,
	}
}

// FromDomainAgendaList конвертирует список domain.AgendaConfig
func FromDomainAgendaList(agendas []*domain.AgendaConfig) *AgendaListResponse {
	result := make([]*AgendaResponse, len(agendas))
	for i, agenda := range agendas {
		result[i] = FromDomainAgenda(agenda)
	}
	return &AgendaListResponse{
		Agendas: result,
		Total:   len(result),
	}
}
