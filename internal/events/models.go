package events

import (
	"time"

	"github.com/zapvenda/ZV-AgendaService/internal/domain"
)

// Типы событий, публикуемых в топик appointments.
// Потребитель - внешний сервис уведомлений/напоминаний: он сам решает, когда
// и что отправлять, события лишь несут нужную ему конфигурацию агенды.
const (
	EventAppointmentCreated       = "appointment.created"
	EventAppointmentCancelled     = "appointment.cancelled"
	EventAppointmentStatusChanged = "appointment.status_changed"
)

// AppointmentEvent полезная нагрузка события по записи
type AppointmentEvent struct {
	EventType      string     `json:"event_type"`
	AppointmentID  int64      `json:"appointment_id"`
	AgendaID       *int64     `json:"agenda_id,omitempty"`
	OrganizationID int64      `json:"organization_id"`
	ClientID       int64      `json:"client_id"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        time.Time  `json:"end_time"`
	Status         string     `json:"status"`
	PreviousStatus *string    `json:"previous_status,omitempty"`

	// Конфигурация уведомлений агенды на момент события
	ReminderHoursBefore int  `json:"reminder_hours_before"`
	SendConfirmation    bool `json:"send_confirmation"`

	OccurredAt time.Time `json:"occurred_at"`
}

// NewAppointmentEvent собирает событие из записи и конфигурации агенды
func NewAppointmentEvent(eventType string, appt *domain.Appointment, agenda *domain.AgendaConfig, occurredAt time.Time) AppointmentEvent {
	evt := AppointmentEvent{
		EventType:      eventType,
		AppointmentID:  appt.ID,
		AgendaID:       appt.AgendaID,
		OrganizationID: appt.OrganizationID,
		ClientID:       appt.ClientID,
		StartTime:      appt.StartTime,
		EndTime:        appt.EndTime,
		Status:         string(appt.Status),
		OccurredAt:     occurredAt,
	}
	if agenda != nil {
		evt.ReminderHoursBefore = agenda.ReminderHoursBefore
		evt.SendConfirmation = agenda.SendConfirmation
	}
	return evt
}
