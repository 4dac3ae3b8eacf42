package get_available_slots

import (
	"time"

	"github.com/zapvenda/ZV-AgendaService/internal/domain"
	getSlots "github.com/zapvenda/ZV-AgendaService/internal/usecase/get_available_slots"
)

// SlotResponse один свободный слот
type SlotResponse struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	AgendaID int64          `json:"agendaId"`
	Date     string         `json:"date"`
	Timezone string         `json:"timezone"`
	Slots    []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime: slot.Start,
			EndTime:   slot.End,
		}
	}

	return &AvailableSlotsResponse{
		AgendaID: resp.AgendaID,
		Date:     resp.Date.Format(domain.DateFormat),
		Timezone: resp.Timezone,
		Slots:    slots,
	}
}
