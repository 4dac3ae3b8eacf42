package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zapvenda/ZV-AgendaService/internal/domain"
)

func interval(h, m, durMin int) (time.Time, time.Time) {
	start := time.Date(2026, 9, 7, h, m, 0, 0, time.UTC)
	return start, start.Add(time.Duration(durMin) * time.Minute)
}

func TestConflictsWithAppointments(t *testing.T) {
	tests := []struct {
		name       string
		candidate  [2]int // час, минута начала; длительность всегда 30 минут
		appt       [2]int
		apptDur    int
		apptStatus domain.AppointmentStatus
		want       bool
	}{
		{
			name:       "partial overlap",
			candidate:  [2]int{11, 30},
			appt:       [2]int{11, 20},
			apptDur:    20,
			apptStatus: domain.StatusScheduled,
			want:       true,
		},
		{
			name:       "appointment fully inside candidate",
			candidate:  [2]int{11, 30},
			appt:       [2]int{11, 40},
			apptDur:    10,
			apptStatus: domain.StatusConfirmed,
			want:       true,
		},
		{
			name:       "candidate fully inside appointment",
			candidate:  [2]int{11, 30},
			appt:       [2]int{11, 0},
			apptDur:    120,
			apptStatus: domain.StatusScheduled,
			want:       true,
		},
		{
			name:       "abutting before does not conflict",
			candidate:  [2]int{11, 30},
			appt:       [2]int{11, 0},
			apptDur:    30,
			apptStatus: domain.StatusScheduled,
			want:       false,
		},
		{
			name:       "abutting after does not conflict",
			candidate:  [2]int{11, 30},
			appt:       [2]int{12, 0},
			apptDur:    30,
			apptStatus: domain.StatusScheduled,
			want:       false,
		},
		{
			name:       "cancelled appointment never conflicts",
			candidate:  [2]int{11, 30},
			appt:       [2]int{11, 30},
			apptDur:    30,
			apptStatus: domain.StatusCancelled,
			want:       false,
		},
		{
			name:       "no_show still blocks its interval",
			candidate:  [2]int{11, 30},
			appt:       [2]int{11, 30},
			apptDur:    30,
			apptStatus: domain.StatusNoShow,
			want:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candStart, candEnd := interval(tt.candidate[0], tt.candidate[1], 30)
			apptStart, apptEnd := interval(tt.appt[0], tt.appt[1], tt.apptDur)

			appointments := []*domain.Appointment{{
				StartTime: apptStart,
				EndTime:   apptEnd,
				Status:    tt.apptStatus,
			}}

			assert.Equal(t, tt.want, ConflictsWithAppointments(candStart, candEnd, appointments))
		})
	}
}

func TestConflictsWithAppointments_Empty(t *testing.T) {
	start, end := interval(11, 30, 30)
	assert.False(t, ConflictsWithAppointments(start, end, nil))
	assert.False(t, ConflictsWithAppointments(start, end, []*domain.Appointment{}))
}
