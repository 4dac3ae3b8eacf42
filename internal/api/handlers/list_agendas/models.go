package list_agendas

import (
	"time"

	"github.com/zapvenda/ZV-AgendaService/internal/service/agendas/models"
)

// AgendaSummary краткая модель агенды для списка: рабочие окна и перерывы
// в списке не нужны, за полной конфигурацией дашборд ходит в GET по ID
type AgendaSummary struct {
	ID             int64  `json:"id"`
	OrganizationID int64  `json:"organizationId"`
	Name           string `json:"name"`
	Color          string `json:"color,omitempty"`

	SlotDurationMinutes int    `json:"slotDurationMinutes"`
	Timezone            string `json:"timezone"`
	IsActive            bool   `json:"isActive"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// AgendaListResponse HTTP response model
type AgendaListResponse struct {
	Agendas []*AgendaSummary `json:"agendas"`
	Total   int              `json:"total"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AgendaListResponse) *AgendaListResponse {
	agendas := make([]*AgendaSummary, len(resp.Agendas))
	for i, agenda := range resp.Agendas {
		agendas[i] = &AgendaSummary{
			ID:                  agenda.ID,
			OrganizationID:      agenda.OrganizationID,
			Name:                agenda.Name,
			Color:               agenda.Color,
			SlotDurationMinutes: agenda.SlotDurationMinutes,
			Timezone:            agenda.Timezone,
			IsActive:            agenda.IsActive,
			CreatedAt:           agenda.CreatedAt.Format(time.RFC3339),
			UpdatedAt:           agenda.UpdatedAt.Format(time.RFC3339),
		}
	}
	return &AgendaListResponse{
		Agendas: agendas,
		Total:   resp.Total,
	}
}
