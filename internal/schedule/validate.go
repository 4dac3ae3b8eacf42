package schedule

import (
	"fmt"
	"time"

	"github.com/zapvenda/ZV-AgendaService/internal/domain"
)

// ValidateBooking авторитетно проверяет предложенный интервал [start, end)
// против правил агенды и существующих записей. Проверки выполняются в строгом
// порядке, каждая со своей ошибкой:
//
//  1. start < now + minAdvanceHours  → ErrTooSoon
//  2. start > now + maxAdvanceDays   → ErrTooFar
//  3. день выключен или интервал не целиком в рабочем окне → ErrOutsideWorkingHours
//  4. пересечение с перерывом → ErrBreakConflict
//  5. пересечение с неотмененной записью → ErrBookingConflict
//
// appointments обязан быть СВЕЖИМ срезом записей на эту дату (перечитанным в
// той же транзакции, что и вставка) - повторное использование ранее выданного
// списка слотов открывает гонку read/write.
//
// now передается явно: функция детерминирована и не читает системные часы.
func ValidateBooking(
	agenda *domain.AgendaConfig,
	start, end time.Time,
	now time.Time,
	appointments []*domain.Appointment,
	loc *time.Location,
) error {
	if !start.Before(end) {
		return fmt.Errorf("%w: start %s is not before end %s", ErrInvalidInterval, start, end)
	}

	// 1-2. Окно допустимого горизонта бронирования
	if start.Before(now.Add(agenda.MinAdvance())) {
		return fmt.Errorf("%w: must book at least %d hours in advance", ErrTooSoon, agenda.MinAdvanceHours)
	}
	if start.After(now.Add(agenda.MaxAdvance())) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrTooFar, agenda.MaxAdvanceDays)
	}

	// 3. Рабочее окно дня, к которому относится начало интервала (в зоне агенды)
	date := start.In(loc)
	win := WorkingHoursFor(agenda, date)
	if !win.Enabled {
		return fmt.Errorf("%w: %s is not a working day", ErrOutsideWorkingHours, date.Weekday())
	}

	windowStart := ToInstant(date, win.Start, loc)
	windowEnd := ToInstant(date, win.End, loc)
	if start.Before(windowStart) || end.After(windowEnd) {
		return fmt.Errorf("%w: interval is not fully inside %s-%s", ErrOutsideWorkingHours, win.Start, win.End)
	}

	// 4. Перерывы
	if conflictsWithIntervals(start, end, breakIntervalsFor(agenda, date, loc)) {
		return ErrBreakConflict
	}

	// 5. Существующие записи
	if ConflictsWithAppointments(start, end, appointments) {
		return ErrBookingConflict
	}

	return nil
}
