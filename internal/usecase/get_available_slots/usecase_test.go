package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapvenda/ZV-AgendaService/internal/domain"
	agendaRepo "github.com/zapvenda/ZV-AgendaService/internal/infra/storage/agenda"
	"github.com/zapvenda/ZV-AgendaService/pkg/types"
)

type fakeAgendaRepo struct {
	agenda *domain.AgendaConfig
	err    error
}

func (f *fakeAgendaRepo) GetByID(ctx context.Context, id int64) (*domain.AgendaConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.agenda, nil
}

type fakeApptRepo struct {
	appointments []*domain.Appointment
	lastFilter   *domain.AgendaAppointmentsFilter
}

func (f *fakeApptRepo) GetByAgendaWithFilter(ctx context.Context, filter domain.AgendaAppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = &filter
	return f.appointments, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testAgenda() *domain.AgendaConfig {
	weekday := domain.DaySchedule{
		Enabled: true,
		Start:   types.WallTime("08:00"),
		End:     types.WallTime("18:00"),
	}
	return &domain.AgendaConfig{
		ID:                  1,
		OrganizationID:      10,
		Name:                "Consultas",
		SlotDurationMinutes: 30,
		Timezone:            "America/Sao_Paulo",
		WorkingHours: domain.WeekSchedule{
			Monday:    weekday,
			Tuesday:   weekday,
			Wednesday: weekday,
			Thursday:  weekday,
			Friday:    weekday,
		},
		IsActive: true,
	}
}

func TestExecute_ReturnsSlots(t *testing.T) {
	apptRepository := &fakeApptRepo{
		appointments: []*domain.Appointment{{
			// 10:00-10:30 по Сан-Паулу
			StartTime: time.Date(2026, 9, 7, 13, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 9, 7, 13, 30, 0, 0, time.UTC),
			Status:    domain.StatusScheduled,
		}},
	}
	uc := NewUseCase(&fakeAgendaRepo{agenda: testAgenda()}, apptRepository, nopLogger{})

	// Понедельник
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		OrganizationID: 10,
		AgendaID:       1,
		Date:           date,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.AgendaID)
	assert.Equal(t, "America/Sao_Paulo", resp.Timezone)
	assert.Len(t, resp.Slots, 19)

	// Записи запрашивались по границам календарного дня в зоне агенды
	require.NotNil(t, apptRepository.lastFilter)
	assert.Equal(t, time.Date(2026, 9, 7, 3, 0, 0, 0, time.UTC), apptRepository.lastFilter.From.UTC())
	assert.Equal(t, time.Date(2026, 9, 8, 3, 0, 0, 0, time.UTC), apptRepository.lastFilter.To.UTC())
	assert.False(t, apptRepository.lastFilter.IncludeCancelled)
}

func TestExecute_DisabledDayReturnsEmptyList(t *testing.T) {
	uc := NewUseCase(&fakeAgendaRepo{agenda: testAgenda()}, &fakeApptRepo{}, nopLogger{})

	// Воскресенье
	resp, err := uc.Execute(context.Background(), &Request{
		OrganizationID: 10,
		AgendaID:       1,
		Date:           time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestExecute_AgendaNotFound(t *testing.T) {
	uc := NewUseCase(&fakeAgendaRepo{err: agendaRepo.ErrAgendaNotFound}, &fakeApptRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		OrganizationID: 10,
		AgendaID:       1,
		Date:           time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrAgendaNotFound)
}

func TestExecute_AgendaOtherOrganization(t *testing.T) {
	agenda := testAgenda()
	agenda.OrganizationID = 99
	uc := NewUseCase(&fakeAgendaRepo{agenda: agenda}, &fakeApptRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		OrganizationID: 10,
		AgendaID:       1,
		Date:           time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrAgendaNotFound)
}

func TestExecute_AgendaInactive(t *testing.T) {
	agenda := testAgenda()
	agenda.IsActive = false
	uc := NewUseCase(&fakeAgendaRepo{agenda: agenda}, &fakeApptRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		OrganizationID: 10,
		AgendaID:       1,
		Date:           time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrAgendaInactive)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeAgendaRepo{agenda: testAgenda()}, &fakeApptRepo{}, nopLogger{})
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "zero organization", req: &Request{AgendaID: 1, Date: date}},
		{name: "zero agenda", req: &Request{OrganizationID: 10, Date: date}},
		{name: "zero date", req: &Request{OrganizationID: 10, AgendaID: 1}},
		{name: "negative duration", req: &Request{OrganizationID: 10, AgendaID: 1, Date: date,
			DurationMinutes: func() *int { d := -15; return &d }()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
