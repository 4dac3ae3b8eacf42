package create_appointment

import "errors"

var (
	// ErrAgendaNotFound возвращается, когда агенда не найдена
	ErrAgendaNotFound = errors.New("create_appointment: agenda not found")

	// ErrAgendaInactive возвращается, когда агенда выключена
	ErrAgendaInactive = errors.New("create_appointment: agenda is not active")

	// ErrClientResolution возвращается, когда не удалось найти или создать клиента
	ErrClientResolution = errors.New("create_appointment: failed to resolve client")

	// ErrTooSoon возвращается, когда начало записи нарушает minAdvanceHours
	ErrTooSoon = errors.New("create_appointment: too soon")

	// ErrTooFar возвращается, когда начало записи превышает maxAdvanceDays
	ErrTooFar = errors.New("create_appointment: too far in advance")

	// ErrOutsideWorkingHours возвращается, когда интервал вне рабочего окна дня
	ErrOutsideWorkingHours = errors.New("create_appointment: outside working hours")

	// ErrBreakConflict возвращается, когда интервал пересекается с перерывом
	ErrBreakConflict = errors.New("create_appointment: break conflict")

	// ErrSlotTaken возвращается, когда интервал пересекается с существующей записью.
	// Каллер должен выбрать другой слот; автоматическая подстановка альтернативы
	// не выполняется.
	ErrSlotTaken = errors.New("create_appointment: slot already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
