package get_available_slots

import "errors"

var (
	// ErrAgendaNotFound возвращается, когда агенда не найдена
	ErrAgendaNotFound = errors.New("get_available_slots: agenda not found")

	// ErrAgendaInactive возвращается, когда агенда выключена.
	// Для внешнего вызывающего неотличимо от отсутствия (404).
	ErrAgendaInactive = errors.New("get_available_slots: agenda is not active")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
