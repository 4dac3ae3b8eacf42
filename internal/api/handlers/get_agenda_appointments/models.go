package get_agenda_appointments

import (
	"time"

	"github.com/zapvenda/ZV-AgendaService/internal/service/appointments/models"
)

// AppointmentResponse HTTP response model одной записи
type AppointmentResponse struct {
	ID             int64   `json:"id"`
	AgendaID       *int64  `json:"agendaId,omitempty"`
	OrganizationID int64   `json:"organizationId"`
	ClientID       int64   `json:"clientId"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Status         string  `json:"status"`
	Title          string  `json:"title,omitempty"`
	Description    *string `json:"description,omitempty"`
	Location       *string `json:"location,omitempty"`
	Notes          *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// AppointmentListResponse HTTP response model списка записей
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AppointmentListResponse) *AppointmentListResponse {
	appointments := make([]*AppointmentResponse, len(resp.Appointments))
	for i, appt := range resp.Appointments {
		appointments[i] = fromServiceAppointment(appt)
	}
	return &AppointmentListResponse{
		Appointments: appointments,
		Total:        resp.Total,
	}
}

func fromServiceAppointment(appt *models.AppointmentResponse) *AppointmentResponse {
	var cancelledAt *string
	if appt.CancelledAt != nil {
		formatted := appt.CancelledAt.Format(time.RFC3339)
		cancelledAt = &formatted
	}

	return &AppointmentResponse{
		ID:                 appt.ID,
		AgendaID:           appt.AgendaID,
		OrganizationID:     appt.OrganizationID,
		ClientID:           appt.ClientID,
		StartTime:          appt.StartTime.Format(time.RFC3339),
		EndTime:            appt.EndTime.Format(time.RFC3339),
		Status:             appt.Status,
		Title:              appt.Title,
		Description:        appt.Description,
		Location:           appt.Location,
		Notes:              appt.Notes,
		CancellationReason: appt.CancellationReason,
		CancelledAt:        cancelledAt,
		CreatedAt:          appt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          appt.UpdatedAt.Format(time.RFC3339),
	}
}
