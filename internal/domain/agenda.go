package domain

import (
	"time"

	"github.com/zapvenda/ZV-AgendaService/pkg/types"
)

// DaySchedule is the working window for a single weekday.
// Start and End are local wall times in the agenda's timezone; for an
// enabled day Start must be strictly before End.
type DaySchedule struct {
	Enabled bool            `json:"enabled"`
	Start   types.WallTime  `json:"start"`
	End     types.WallTime  `json:"end"`
}

// WeekSchedule holds one DaySchedule per weekday.
type WeekSchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// ForWeekday returns the schedule configured for the given weekday.
func (w WeekSchedule) ForWeekday(day time.Weekday) DaySchedule {
	switch day {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return DaySchedule{Enabled: false}
	}
}

// BreakWindow is a recurring blocked-out interval (lunch, cleaning, ...)
// applied on the listed weekdays. Windows on the same day may overlap each
// other; downstream logic tolerates that.
type BreakWindow struct {
	Start types.WallTime `json:"start"`
	End   types.WallTime `json:"end"`
	Days  []time.Weekday `json:"days"`
}

// AppliesTo reports whether the break is active on the given weekday.
func (b BreakWindow) AppliesTo(day time.Weekday) bool {
	for _, d := range b.Days {
		if d == day {
			return true
		}
	}
	return false
}

// AgendaConfig is a bookable calendar: per-weekday working hours, recurring
// breaks, slot sizing and booking-advance limits. Slots are always computed
// on demand from this configuration, never stored.
type AgendaConfig struct {
	ID             int64
	OrganizationID int64

	Name  string
	Color string

	SlotDurationMinutes int
	// BufferMinutes is configured and exposed but deliberately not consulted
	// by slot generation; see internal/schedule.GenerateSlots.
	BufferMinutes   int
	MinAdvanceHours int
	MaxAdvanceDays  int

	// Timezone is the IANA zone name the working hours and breaks are
	// authored in (e.g. "America/Sao_Paulo").
	Timezone string

	WorkingHours WeekSchedule
	Breaks       []BreakWindow

	ReminderHoursBefore int
	SendConfirmation    bool
	IsActive            bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location resolves the agenda's timezone.
func (a *AgendaConfig) Location() (*time.Location, error) {
	if a.Timezone == "" {
		return time.LoadLocation(DefaultTimezone)
	}
	return time.LoadLocation(a.Timezone)
}

// SlotDuration returns the slot length as a time.Duration.
func (a *AgendaConfig) SlotDuration() time.Duration {
	return time.Duration(a.SlotDurationMinutes) * time.Minute
}

// MinAdvance returns the minimum booking notice as a time.Duration.
func (a *AgendaConfig) MinAdvance() time.Duration {
	return time.Duration(a.MinAdvanceHours) * time.Hour
}

// MaxAdvance returns the maximum booking horizon as a time.Duration.
func (a *AgendaConfig) MaxAdvance() time.Duration {
	return time.Duration(a.MaxAdvanceDays) * 24 * time.Hour
}
