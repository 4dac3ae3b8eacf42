package schedule

import "errors"

var (
	// ErrTooSoon возвращается, когда начало бронирования нарушает minAdvanceHours
	ErrTooSoon = errors.New("schedule: booking starts too soon")

	// ErrTooFar возвращается, когда начало бронирования превышает maxAdvanceDays
	ErrTooFar = errors.New("schedule: booking starts too far in advance")

	// ErrOutsideWorkingHours возвращается, когда день выключен или интервал
	// не помещается целиком в рабочее окно этого дня
	ErrOutsideWorkingHours = errors.New("schedule: booking is outside working hours")

	// ErrBreakConflict возвращается, когда интервал пересекается с перерывом
	ErrBreakConflict = errors.New("schedule: booking overlaps a break")

	// ErrBookingConflict возвращается, когда интервал пересекается с существующей записью
	ErrBookingConflict = errors.New("schedule: booking overlaps an existing appointment")

	// ErrInvalidInterval возвращается при некорректном интервале (start >= end)
	ErrInvalidInterval = errors.New("schedule: invalid interval")
)
