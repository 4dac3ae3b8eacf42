package create_appointment

import (
	"time"

	createAppointment "github.com/zapvenda/ZV-AgendaService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	AgendaID    int64   `json:"agendaId"`
	StartTime   string  `json:"startTime"` // RFC3339, например "2026-09-07T14:00:00-03:00"
	EndTime     string  `json:"endTime"`   // RFC3339
	ClientPhone string  `json:"clientPhone"`
	ClientName  *string `json:"clientName,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
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
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// (с парсингом времени начала и конца)
func (r *CreateAppointmentRequest) ToUseCaseRequest(organizationID int64) (*createAppointment.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		OrganizationID: organizationID,
		AgendaID:       r.AgendaID,
		StartTime:      startTime,
		EndTime:        endTime,
		ClientPhone:    r.ClientPhone,
		ClientName:     r.ClientName,
		Title:          r.Title,
		Description:    r.Description,
		Location:       r.Location,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:             resp.ID,
		AgendaID:       resp.AgendaID,
		OrganizationID: resp.OrganizationID,
		ClientID:       resp.ClientID,
		StartTime:      resp.StartTime.Format(time.RFC3339),
		EndTime:        resp.EndTime.Format(time.RFC3339),
		Status:         resp.Status,
		Title:          resp.Title,
		Description:    resp.Description,
		Location:       resp.Location,
		Notes:          resp.Notes,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
