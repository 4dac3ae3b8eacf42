package schedule

import (
	"time"

	"github.com/zapvenda/ZV-AgendaService/internal/domain"
)

// GenerateSlots перечисляет свободные слоты агенды на дату date.
//
// Кандидаты идут от начала рабочего окна с фиксированным шагом
// slotDurationMinutes (bufferMinutes на шаг НЕ влияет); неполный хвостовой
// слот не предлагается. Кандидат отбрасывается, если пересекается с перерывом
// или с неотмененной записью из appointments. Результат хронологически
// упорядочен; соседние слоты по построению не пересекаются.
//
// Функция чистая: не читает текущее время и не ходит в хранилище.
func GenerateSlots(
	agenda *domain.AgendaConfig,
	date time.Time,
	appointments []*domain.Appointment,
	loc *time.Location,
) []domain.Slot {
	win := WorkingHoursFor(agenda, date)
	if !win.Enabled {
		return []domain.Slot{}
	}

	windowStart := ToInstant(date, win.Start, loc)
	windowEnd := ToInstant(date, win.End, loc)
	breaks := breakIntervalsFor(agenda, date, loc)
	stride := agenda.SlotDuration()

	slots := make([]domain.Slot, 0)
	for cursor := windowStart; !cursor.Add(stride).After(windowEnd); cursor = cursor.Add(stride) {
		candidateEnd := cursor.Add(stride)

		if conflictsWithIntervals(cursor, candidateEnd, breaks) {
			continue
		}
		if ConflictsWithAppointments(cursor, candidateEnd, appointments) {
			continue
		}

		slots = append(slots, domain.Slot{Start: cursor, End: candidateEnd})
	}

	return slots
}
