package domain

import (
	"errors"
	"time"
)

// ErrUnknownStatus is returned when a raw status string matches no known status.
var ErrUnknownStatus = errors.New("unknown appointment status")

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// ParseAppointmentStatus validates a raw status string.
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return AppointmentStatus(s), true
	default:
		return "", false
	}
}

// Appointment is a committed booking. StartTime and EndTime are absolute
// instants stored in UTC; StartTime < EndTime always holds. AgendaID is nil
// for manual bookings created outside any agenda.
type Appointment struct {
	ID             int64
	AgendaID       *int64
	OrganizationID int64
	ClientID       int64

	StartTime time.Time
	EndTime   time.Time
	Status    AppointmentStatus

	Title       string
	Description *string
	Location    *string
	Notes       *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled reports whether the appointment has been cancelled.
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// CountsForConflicts reports whether the appointment blocks its time range.
// Cancelled appointments are kept for history but never conflict.
func (a *Appointment) CountsForConflicts() bool {
	return a.Status != StatusCancelled
}

// IsTerminal reports whether the status permits no further transitions.
func (a *Appointment) IsTerminal() bool {
	switch a.Status {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the status change to next is permitted:
//
//	scheduled -> confirmed -> completed
//	scheduled | confirmed -> cancelled
//	scheduled | confirmed -> no_show, only once EndTime has passed
//
// completed, cancelled and no_show are terminal.
func (a *Appointment) CanTransitionTo(next AppointmentStatus, now time.Time) bool {
	if a.IsTerminal() {
		return false
	}

	switch next {
	case StatusConfirmed:
		return a.Status == StatusScheduled
	case StatusCompleted:
		return a.Status == StatusConfirmed
	case StatusCancelled:
		return a.Status == StatusScheduled || a.Status == StatusConfirmed
	case StatusNoShow:
		return (a.Status == StatusScheduled || a.Status == StatusConfirmed) && now.After(a.EndTime)
	default:
		return false
	}
}

// AgendaAppointmentsFilter filters appointment queries for one agenda.
type AgendaAppointmentsFilter struct {
	AgendaID         int64
	From             *time.Time         // interval filter: appointments overlapping [From, To)
	To               *time.Time
	Status           *AppointmentStatus // optional exact-status filter
	IncludeCancelled bool               // include cancelled rows (history views)
}
