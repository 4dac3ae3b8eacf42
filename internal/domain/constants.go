package domain

// Default configuration values for a freshly created agenda
const (
	DefaultSlotDurationMinutes = 30
	DefaultBufferMinutes       = 0
	DefaultMinAdvanceHours     = 1
	DefaultMaxAdvanceDays      = 30
	DefaultReminderHoursBefore = 24
	DefaultTimezone            = "America/Sao_Paulo"
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MinBufferMinutes       = 0
	MaxBufferMinutes       = 240
	MinAdvanceHoursLimit   = 0
	MaxAdvanceHoursLimit   = 168 // 1 week
	MinAdvanceDaysLimit    = 1
	MaxAdvanceDaysLimit    = 365 // 1 year
	MaxNotesLength         = 1000
	MaxTitleLength         = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses lists statuses excluded from conflict checks.
// Only cancelled appointments free their time range; completed and no-show
// appointments are in the past by definition and kept for history.
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
}

// ActiveStatuses lists statuses that occupy their time range.
var ActiveStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusCompleted,
	StatusNoShow,
}
