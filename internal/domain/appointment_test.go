package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseAppointmentStatus(t *testing.T) {
	for _, valid := range []string{"scheduled", "confirmed", "completed", "cancelled", "no_show"} {
		status, ok := ParseAppointmentStatus(valid)
		assert.True(t, ok, "expected %q to parse", valid)
		assert.Equal(t, AppointmentStatus(valid), status)
	}

	for _, invalid := range []string{"", "pending", "SCHEDULED", "noshow"} {
		_, ok := ParseAppointmentStatus(invalid)
		assert.False(t, ok, "expected %q to fail", invalid)
	}
}

func TestAppointment_CanTransitionTo(t *testing.T) {
	endTime := time.Date(2026, 9, 7, 13, 30, 0, 0, time.UTC)
	beforeEnd := endTime.Add(-time.Hour)
	afterEnd := endTime.Add(time.Hour)

	tests := []struct {
		name string
		from AppointmentStatus
		to   AppointmentStatus
		now  time.Time
		want bool
	}{
		{name: "scheduled to confirmed", from: StatusScheduled, to: StatusConfirmed, now: beforeEnd, want: true},
		{name: "scheduled to cancelled", from: StatusScheduled, to: StatusCancelled, now: beforeEnd, want: true},
		{name: "scheduled to completed skips confirmation", from: StatusScheduled, to: StatusCompleted, now: afterEnd, want: false},
		{name: "confirmed to completed", from: StatusConfirmed, to: StatusCompleted, now: afterEnd, want: true},
		{name: "confirmed to cancelled", from: StatusConfirmed, to: StatusCancelled, now: beforeEnd, want: true},
		{name: "confirmed back to scheduled", from: StatusConfirmed, to: StatusScheduled, now: beforeEnd, want: false},

		// no_show допустим только после окончания записи
		{name: "scheduled to no_show before end", from: StatusScheduled, to: StatusNoShow, now: beforeEnd, want: false},
		{name: "scheduled to no_show after end", from: StatusScheduled, to: StatusNoShow, now: afterEnd, want: true},
		{name: "confirmed to no_show after end", from: StatusConfirmed, to: StatusNoShow, now: afterEnd, want: true},

		// Терминальные статусы неизменяемы
		{name: "cancelled to scheduled", from: StatusCancelled, to: StatusScheduled, now: beforeEnd, want: false},
		{name: "cancelled to confirmed", from: StatusCancelled, to: StatusConfirmed, now: beforeEnd, want: false},
		{name: "completed to cancelled", from: StatusCompleted, to: StatusCancelled, now: afterEnd, want: false},
		{name: "no_show to confirmed", from: StatusNoShow, to: StatusConfirmed, now: afterEnd, want: false},

		{name: "unknown target", from: StatusScheduled, to: AppointmentStatus("archived"), now: beforeEnd, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := &Appointment{Status: tt.from, EndTime: endTime}
			assert.Equal(t, tt.want, appt.CanTransitionTo(tt.to, tt.now))
		})
	}
}

func TestAppointment_CountsForConflicts(t *testing.T) {
	for _, status := range []AppointmentStatus{StatusScheduled, StatusConfirmed, StatusCompleted, StatusNoShow} {
		appt := &Appointment{Status: status}
		assert.True(t, appt.CountsForConflicts(), "status %s must block its interval", status)
	}

	cancelled := &Appointment{Status: StatusCancelled}
	assert.False(t, cancelled.CountsForConflicts())
	assert.True(t, cancelled.IsCancelled())
}

func TestOverlaps(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2026, 9, 7, h, m, 0, 0, time.UTC)
	}

	// Частичное пересечение
	assert.True(t, Overlaps(at(11, 30), at(12, 0), at(11, 20), at(11, 40)))
	// Полное вложение
	assert.True(t, Overlaps(at(11, 0), at(12, 0), at(11, 15), at(11, 45)))
	// Граничащие интервалы не пересекаются
	assert.False(t, Overlaps(at(11, 30), at(12, 0), at(11, 0), at(11, 30)))
	assert.False(t, Overlaps(at(11, 30), at(12, 0), at(12, 0), at(12, 30)))
	// Непересекающиеся
	assert.False(t, Overlaps(at(9, 0), at(9, 30), at(15, 0), at(15, 30)))
}
