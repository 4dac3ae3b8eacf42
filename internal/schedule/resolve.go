package schedule

import (
	"time"

	"github.com/zapvenda/ZV-AgendaService/internal/domain"
)

// WorkingHoursFor возвращает рабочее окно агенды на день недели даты date.
// Если день выключен, слотов в эту дату не существует независимо от остальной
// конфигурации - вызывающий код обязан завершиться сразу.
func WorkingHoursFor(agenda *domain.AgendaConfig, date time.Time) domain.DaySchedule {
	return agenda.WorkingHours.ForWeekday(date.Weekday())
}

// BreaksFor возвращает все перерывы агенды, действующие в день недели даты
// date, как настенные интервалы. Перерывов на день может быть несколько, они
// не обязаны быть упорядоченными или непересекающимися.
func BreaksFor(agenda *domain.AgendaConfig, date time.Time) []domain.BreakWindow {
	weekday := date.Weekday()

	breaks := make([]domain.BreakWindow, 0, len(agenda.Breaks))
	for _, b := range agenda.Breaks {
		if b.AppliesTo(weekday) {
			breaks = append(breaks, b)
		}
	}
	return breaks
}

// breakIntervalsFor переводит перерывы на дату date в абсолютные интервалы UTC.
func breakIntervalsFor(agenda *domain.AgendaConfig, date time.Time, loc *time.Location) []domain.Slot {
	windows := BreaksFor(agenda, date)

	intervals := make([]domain.Slot, 0, len(windows))
	for _, w := range windows {
		intervals = append(intervals, domain.Slot{
			Start: ToInstant(date, w.Start, loc),
			End:   ToInstant(date, w.End, loc),
		})
	}
	return intervals
}
