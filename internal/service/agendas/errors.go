package agendas

import "errors"

var (
	// ErrAgendaNotFound возвращается, когда агенда не найдена
	ErrAgendaNotFound = errors.New("agendas service: agenda not found")

	// ErrAccessDenied возвращается, когда агенда принадлежит другой организации
	ErrAccessDenied = errors.New("agendas service: access denied")

	// ErrInvalidConfig возвращается при нарушении инвариантов конфигурации
	// (start >= end на включенном дне, неизвестная таймзона и т.п.)
	ErrInvalidConfig = errors.New("agendas service: invalid agenda configuration")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("agendas service: internal error")
)
