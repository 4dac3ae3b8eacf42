package update_agenda

import (
	"time"

	"github.com/zapvenda/ZV-AgendaService/internal/domain"
	"github.com/zapvenda/ZV-AgendaService/internal/service/agendas/models"
)

// DayScheduleBody рабочее окно одного дня недели
type DayScheduleBody struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"` // HH:MM
	End     string `json:"end"`   // HH:MM
}

// WeekScheduleBody рабочие окна всех дней недели
type WeekScheduleBody struct {
	Monday    DayScheduleBody `json:"monday"`
	Tuesday   DayScheduleBody `json:"tuesday"`
	Wednesday DayScheduleBody `json:"wednesday"`
	Thursday  DayScheduleBody `json:"thursday"`
	Friday    DayScheduleBody `json:"friday"`
	Saturday  DayScheduleBody `json:"saturday"`
	Sunday    DayScheduleBody `json:"sunday"`
}

// BreakBody повторяющийся перерыв
type BreakBody struct {
	Start string `json:"start"` // HH:MM
	End   string `json:"end"`   // HH:MM
	Days  []int  `json:"days"`  // 0=воскресенье ... 6=суббота
}

// UpdateAgendaRequest HTTP request model.
// Обновление полное: конфигурация агенды заменяется целиком,
// частичных PATCH-полей нет.
type UpdateAgendaRequest struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`

	SlotDurationMinutes int `json:"slotDurationMinutes"`
	BufferMinutes       int `json:"bufferMinutes"`
	MinAdvanceHours     int `json:"minAdvanceHours"`
	MaxAdvanceDays      int `json:"maxAdvanceDays"`

	Timezone string `json:"timezone,omitempty"`

	WorkingHours WeekScheduleBody `json:"workingHours"`
	Breaks       []BreakBody      `json:"breaks,omitempty"`

	ReminderHoursBefore int  `json:"reminderHoursBefore"`
	SendConfirmation    bool `json:"sendConfirmation"`
	IsActive            bool `json:"isActive"`
}

// AgendaResponse HTTP response model
type AgendaResponse struct {
	ID             int64  `json:"id"`
	OrganizationID int64  `json:"organizationId"`
	Name           string `json:"name"`
	Color          string `json:"color,omitempty"`

	SlotDurationMinutes int `json:"slotDurationMinutes"`
	BufferMinutes       int `json:"bufferMinutes"`
	MinAdvanceHours     int `json:"minAdvanceHours"`
	MaxAdvanceDays      int `json:"maxAdvanceDays"`

	Timezone string `json:"timezone"`

	WorkingHours WeekScheduleBody `json:"workingHours"`
	Breaks       []BreakBody      `json:"breaks"`

	ReminderHoursBefore int  `json:"reminderHoursBefore"`
	SendConfirmation    bool `json:"sendConfirmation"`
	IsActive            bool `json:"isActive"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateAgendaRequest) ToServiceRequest(organizationID int64) *models.SaveAgendaRequest {
	breaks := make([]models.BreakInput, 0, len(r.Breaks))
	for _, b := range r.Breaks {
		days := make([]time.Weekday, 0, len(b.Days))
		for _, d := range b.Days {
			days = append(days, time.Weekday(d))
		}
		breaks = append(breaks, models.BreakInput{
			Start: b.Start,
			End:   b.End,
			Days:  days,
		})
	}

	return &models.SaveAgendaRequest{
		OrganizationID:      organizationID,
		Name:                r.Name,
		Color:               r.Color,
		SlotDurationMinutes: r.SlotDurationMinutes,
		BufferMinutes:       r.BufferMinutes,
		MinAdvanceHours:     r.MinAdvanceHours,
		MaxAdvanceDays:      r.MaxAdvanceDays,
		Timezone:            r.Timezone,
		WorkingHours: models.WeekScheduleInput{
			Monday:    r.WorkingHours.Monday.toInput(),
			Tuesday:   r.WorkingHours.Tuesday.toInput(),
			Wednesday: r.WorkingHours.Wednesday.toInput(),
			Thursday:  r.WorkingHours.Thursday.toInput(),
			Friday:    r.WorkingHours.Friday.toInput(),
			Saturday:  r.WorkingHours.Saturday.toInput(),
			Sunday:    r.WorkingHours.Sunday.toInput(),
		},
		Breaks:              breaks,
		ReminderHoursBefore: r.ReminderHoursBefore,
		SendConfirmation:    r.SendConfirmation,
		IsActive:            r.IsActive,
	}
}

func (d DayScheduleBody) toInput() models.DayScheduleInput {
	return models.DayScheduleInput{
		Enabled: d.Enabled,
		Start:   d.Start,
		End:     d.End,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AgendaResponse) *AgendaResponse {
	return &AgendaResponse{
		ID:                  resp.ID,
		OrganizationID:      resp.OrganizationID,
		Name:                resp.Name,
		Color:               resp.Color,
		SlotDurationMinutes: resp.SlotDurationMinutes,
		BufferMinutes:       resp.BufferMinutes,
		MinAdvanceHours:     resp.MinAdvanceHours,
		MaxAdvanceDays:      resp.MaxAdvanceDays,
		Timezone:            resp.Timezone,
		WorkingHours:        weekScheduleBody(resp.WorkingHours),
		Breaks:              breakBodies(resp.Breaks),
		ReminderHoursBefore: resp.ReminderHoursBefore,
		SendConfirmation:    resp.SendConfirmation,
		IsActive:            resp.IsActive,
		CreatedAt:           resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           resp.UpdatedAt.Format(time.RFC3339),
	}
}

func weekScheduleBody(week domain.WeekSchedule) WeekScheduleBody {
	return WeekScheduleBody{
		Monday:    dayScheduleBody(week.Monday),
		Tuesday:   dayScheduleBody(week.Tuesday),
		Wednesday: dayScheduleBody(week.Wednesday),
		Thursday:  dayScheduleBody(week.Thursday),
		Friday:    dayScheduleBody(week.Friday),
		Saturday:  dayScheduleBody(week.Saturday),
		Sunday:    dayScheduleBody(week.Sunday),
	}
}

func dayScheduleBody(day domain.DaySchedule) DayScheduleBody {
	return DayScheduleBody{
		Enabled: day.Enabled,
		Start:   day.Start.String(),
		End:     day.End.String(),
	}
}

func breakBodies(breaks []domain.BreakWindow) []BreakBody {
	result := make([]BreakBody, 0, len(breaks))
	for _, b := range breaks {
		days := make([]int, 0, len(b.Days))
		for _, d := range b.Days {
			days = append(days, int(d))
		}
		result = append(result, BreakBody{
			Start: b.Start.String(),
			End:   b.End.String(),
			Days:  days,
		})
	}
	return result
}
