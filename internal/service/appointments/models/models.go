package models

import (
	"time"

	"github.com/zapvenda/ZV-AgendaService/internal/domain"
)

// AppointmentResponse модель записи для вызывающего слоя
type AppointmentResponse struct {
	ID             int64
	AgendaID       *int64
	OrganizationID int64
	ClientID       int64

	StartTime time.Time
	EndTime   time.Time
	Status    string

	Title       string
	Description *string
	Location    *string
	Notes       *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse
	Total        int
}

// ListAgendaAppointmentsRequest запрос списка записей агенды за период
type ListAgendaAppointmentsRequest struct {
	OrganizationID   int64
	AgendaID         int64
	From             *time.Time
	To               *time.Time
	Status           *string
	IncludeCancelled bool
}

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	OrganizationID int64
	Reason         string
}

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	OrganizationID int64
	Status         string
}

// FromDomainAppointment конвертирует domain.Appointment в response модель
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                 appt.ID,
		AgendaID:           appt.AgendaID,
		OrganizationID:     appt.OrganizationID,
		ClientID:           appt.ClientID,
		StartTime:          appt.StartTime,
		EndTime:            appt.EndTime,
		Status:             string(appt.Status),
		Title:              appt.Title,
		Description:        appt.Description,
		Location:           appt.Location,
		Notes:              appt.Notes,
		CancellationReason: appt.CancellationReason,
		CancelledAt:        appt.CancelledAt,
		CreatedAt:          appt.CreatedAt,
		UpdatedAt:          appt.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain.Appointment
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	result := make([]*AppointmentResponse, len(appointments))
	for i, appt := range appointments {
		result[i] = FromDomainAppointment(appt)
	}
	return &AppointmentListResponse{
		Appointments: result,
		Total:        len(result),
	}
}

// ToDomainFilter конвертирует запрос списка в domain фильтр
func (r *ListAgendaAppointmentsRequest) ToDomainFilter() (domain.AgendaAppointmentsFilter, error) {
	filter := domain.AgendaAppointmentsFilter{
		AgendaID:         r.AgendaID,
		From:             r.From,
		To:               r.To,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, ok := domain.ParseAppointmentStatus(*r.Status)
		if !ok {
			return domain.AgendaAppointmentsFilter{}, domain.ErrUnknownStatus
		}
		filter.Status = &status
	}

	return filter, nil
}
