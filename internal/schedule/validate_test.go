package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapvenda/ZV-AgendaService/internal/domain"
	"github.com/zapvenda/ZV-AgendaService/pkg/types"
)

// bookingAt собирает интервал записи на дату date по настенным временам
func bookingAt(loc *time.Location, date time.Time, start, end string) (time.Time, time.Time) {
	return types.WallTime(start).OnDate(date, loc), types.WallTime(end).OnDate(date, loc)
}

func TestValidateBooking_Accepts(t *testing.T) {
	loc := mustLocation(t, "America/Sao_Paulo")
	agenda := testAgenda()
	date := monday(loc)

	// "Сейчас" - утро того же понедельника
	now := types.WallTime("07:00").OnDate(date, loc)

	start, end := bookingAt(loc, date, "10:00", "10:30")
	err := ValidateBooking(agenda, start, end, now, nil, loc)
	assert.NoError(t, err)
}

func TestValidateBooking_AcceptsAbutting(t *testing.T) {
	loc := mustLocation(t, "America/Sao_Paulo")
	agenda := testAgenda()
	date := monday(loc)
	now := types.WallTime("07:00").OnDate(date, loc)

	appointments := []*domain.Appointment{
		apptAt(loc, date, "10:00", "10:30", domain.StatusScheduled),
	}

	// Интервал, начинающийся ровно в конец существующей записи, проходит
	start, end := bookingAt(loc, date, "10:30", "11:00")
	assert.NoError(t, ValidateBooking(agenda, start, end, now, appointments, loc))

	// И заканчивающийся ровно в ее начало - тоже
	start, end = bookingAt(loc, date, "09:30", "10:00")
	assert.NoError(t, ValidateBooking(agenda, start, end, now, appointments, loc))
}

func TestValidateBooking_RejectsOverlapByOneMinute(t *testing.T) {
	loc := mustLocation(t, "America/Sao_Paulo")
	agenda := testAgenda()
	date := monday(loc)
	now := types.WallTime("07:00").OnDate(date, loc)

	appointments := []*domain.Appointment{
		apptAt(loc, date, "10:00", "10:30", domain.StatusScheduled),
	}

	// Начало на минуту раньше конца существующей записи - конфликт
	start, end := bookingAt(loc, date, "10:29", "10:59")
	err := ValidateBooking(agenda, start, end, now, appointments, loc)
	assert.ErrorIs(t, err, ErrBookingConflict)
}

func TestValidateBooking_TooSoon(t *testing.T) {
	loc := mustLocation(t, "America/Sao_Paulo")
	agenda := testAgenda() // min_advance_hours = 2
	date := monday(loc)

	now := types.WallTime("09:00").OnDate(date, loc)

	// Начало через час - меньше минимального упреждения
	start, end := bookingAt(loc, date, "10:00", "10:30")
	assert.ErrorIs(t, ValidateBooking(agenda, start, end, now, nil, loc), ErrTooSoon)

	// Начало ровно в "сейчас" при min_advance > 0 - тоже отклоняется
	start, end = bookingAt(loc, date, "09:00", "09:30")
	assert.ErrorIs(t, ValidateBooking(agenda, start, end, now, nil, loc), ErrTooSoon)

	// Начало ровно на границе now + min_advance - проходит
	start, end = bookingAt(loc, date, "11:00", "11:30")
	assert.NoError(t, ValidateBooking(agenda, start, end, now, nil, loc))
}

func TestValidateBooking_TooFar(t *testing.T) {
	loc := mustLocation(t, "America/Sao_Paulo")
	agenda := testAgenda() // max_advance_days = 30
	date := monday(loc)
	now := types.WallTime("07:00").OnDate(date, loc)

	// Понедельник через 5 недель - за горизонтом в 30 дней
	farDate := date.AddDate(0, 0, 35)
	start, end := bookingAt(loc, farDate, "10:00", "10:30")
	assert.ErrorIs(t, ValidateBooking(agenda, start, end, now, nil, loc), ErrTooFar)
}

func TestValidateBooking_OutsideWorkingHours(t *testing.T) {
	loc := mustLocation(t, "America/Sao_Paulo")
	agenda := testAgenda()
	date := monday(loc)
	now := types.WallTime("01:00").OnDate(date, loc)

	tests := []struct {
		name       string
		start, end string
	}{
		{name: "before window", start: "07:00", end: "07:30"},
		{name: "after window", start: "18:00", end: "18:30"},
		{name: "straddles window start", start: "07:45", end: "08:15"},
		{name: "straddles window end", start: "17:45", end: "18:15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := bookingAt(loc, date, tt.start, tt.end)
			err := ValidateBooking(agenda, start, end, now, nil, loc)
			assert.ErrorIs(t, err, ErrOutsideWorkingHours)
		})
	}
}

func TestValidateBooking_DisabledDay(t *testing.T) {
	loc := mustLocation(t, "America/Sao_Paulo")
	agenda := testAgenda()

	// Воскресенье выключено
	sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, loc)
	now := types.WallTime("01:00").OnDate(sunday, loc)

	start, end := bookingAt(loc, sunday, "10:00", "10:30")
	err := ValidateBooking(agenda, start, end, now, nil, loc)
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestValidateBooking_BreakConflict(t *testing.T) {
	loc := mustLocation(t, "America/Sao_Paulo")
	agenda := testAgenda()
	agenda.Breaks = []domain.BreakWindow{
		{
			Start: types.WallTime("12:00"),
			End:   types.WallTime("13:00"),
			Days:  []time.Weekday{time.Monday},
		},
	}
	date := monday(loc)
	now := types.WallTime("07:00").OnDate(date, loc)

	start, end := bookingAt(loc, date, "12:30", "13:00")
	assert.ErrorIs(t, ValidateBooking(agenda, start, end, now, nil, loc), ErrBreakConflict)

	// Граничащий с перерывом интервал проходит
	start, end = bookingAt(loc, date, "13:00", "13:30")
	assert.NoError(t, ValidateBooking(agenda, start, end, now, nil, loc))

	// В другой день недели перерыв не действует
	tuesday := date.AddDate(0, 0, 1)
	start, end = bookingAt(loc, tuesday, "12:30", "13:00")
	assert.NoError(t, ValidateBooking(agenda, start, end, now, nil, loc))
}

func TestValidateBooking_ErrorOrder(t *testing.T) {
	loc := mustLocation(t, "America/Sao_Paulo")
	agenda := testAgenda()
	agenda.Breaks = []domain.BreakWindow{
		{
			Start: types.WallTime("12:00"),
			End:   types.WallTime("13:00"),
			Days:  []time.Weekday{time.Monday},
		},
	}
	date := monday(loc)

	// Интервал нарушает сразу несколько правил: слишком рано, перерыв и
	// конфликт с записью. Побеждает первая проверка - ErrTooSoon.
	now := types.WallTime("11:30").OnDate(date, loc)
	appointments := []*domain.Appointment{
		apptAt(loc, date, "12:00", "13:00", domain.StatusScheduled),
	}

	start, end := bookingAt(loc, date, "12:30", "13:00")
	err := ValidateBooking(agenda, start, end, now, appointments, loc)
	assert.ErrorIs(t, err, ErrTooSoon)

	// Отодвигаем "сейчас": остаются перерыв и запись, побеждает перерыв
	now = types.WallTime("07:00").OnDate(date, loc)
	err = ValidateBooking(agenda, start, end, now, appointments, loc)
	assert.ErrorIs(t, err, ErrBreakConflict)
}

func TestValidateBooking_InvalidInterval(t *testing.T) {
	loc := mustLocation(t, "America/Sao_Paulo")
	agenda := testAgenda()
	date := monday(loc)
	now := types.WallTime("07:00").OnDate(date, loc)

	start, _ := bookingAt(loc, date, "10:00", "10:30")

	require.ErrorIs(t, ValidateBooking(agenda, start, start, now, nil, loc), ErrInvalidInterval)

	end := start.Add(-30 * time.Minute)
	require.ErrorIs(t, ValidateBooking(agenda, start, end, now, nil, loc), ErrInvalidInterval)
}

func TestValidateBooking_OffGridIntervalAllowed(t *testing.T) {
	loc := mustLocation(t, "America/Sao_Paulo")
	agenda := testAgenda()
	date := monday(loc)
	now := types.WallTime("07:00").OnDate(date, loc)

	// Валидация проверяет правила, а не сетку слотов: интервал с произвольным
	// началом и длительностью внутри окна проходит
	start, end := bookingAt(loc, date, "10:10", "10:55")
	assert.NoError(t, ValidateBooking(agenda, start, end, now, nil, loc))
}
