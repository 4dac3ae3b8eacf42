package get_available_slots

import (
	"time"

	"github.com/zapvenda/ZV-AgendaService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	OrganizationID  int64     // Организация вызывающего (скоуп доступа)
	AgendaID        int64     // ID агенды
	Date            time.Time // Дата, на которую запрашиваются слоты (без времени)
	DurationMinutes *int      // Информационный параметр запроса; на генерацию не влияет
}

// Response модель ответа со списком доступных слотов
type Response struct {
	AgendaID int64         // ID агенды
	Date     time.Time     // Дата, на которую запрашивались слоты
	Timezone string        // Таймзона агенды (IANA)
	Slots    []domain.Slot // Свободные слоты в хронологическом порядке
}
