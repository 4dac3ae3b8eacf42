package schedule

import (
	"time"

	"github.com/zapvenda/ZV-AgendaService/internal/domain"
)

// ConflictsWithAppointments проверяет пересечение полуоткрытого интервала
// [start, end) с существующими записями. Отмененные записи не учитываются;
// граничащие интервалы (end == start соседа) пересечением НЕ считаются.
//
// Примеры:
// - Кандидат 11:30-12:00, запись 11:20-11:40 → ЕСТЬ пересечение
// - Кандидат 11:30-12:00, запись 11:00-11:30 → НЕТ пересечения (граничат)
// - Кандидат 11:30-12:00, запись 12:00-12:30 → НЕТ пересечения (граничат)
func ConflictsWithAppointments(start, end time.Time, appointments []*domain.Appointment) bool {
	for _, appt := range appointments {
		if !appt.CountsForConflicts() {
			continue
		}
		if domain.Overlaps(start, end, appt.StartTime, appt.EndTime) {
			return true
		}
	}
	return false
}

// conflictsWithIntervals проверяет пересечение [start, end) хотя бы с одним
// из интервалов (используется для перерывов).
func conflictsWithIntervals(start, end time.Time, intervals []domain.Slot) bool {
	for _, iv := range intervals {
		if domain.Overlaps(start, end, iv.Start, iv.End) {
			return true
		}
	}
	return false
}
