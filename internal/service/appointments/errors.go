package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointments service: appointment not found")

	// ErrAccessDenied возвращается, когда запись принадлежит другой организации
	ErrAccessDenied = errors.New("appointments service: access denied")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	// (например cancelled -> confirmed или no_show до окончания записи)
	ErrInvalidTransition = errors.New("appointments service: status transition not allowed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("appointments service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments service: internal error")
)
