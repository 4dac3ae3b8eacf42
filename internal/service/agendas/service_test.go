package agendas

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapvenda/ZV-AgendaService/internal/domain"
	agendaRepo "github.com/zapvenda/ZV-AgendaService/internal/infra/storage/agenda"
	"github.com/zapvenda/ZV-AgendaService/internal/service/agendas/models"
)

type fakeAgendaRepo struct {
	stored  *domain.AgendaConfig
	created *domain.AgendaConfig
	updated *domain.AgendaConfig
	getErr  error
}

func (f *fakeAgendaRepo) Create(ctx context.Context, agenda *domain.AgendaConfig) (*domain.AgendaConfig, error) {
	out := *agenda
	out.ID = 1
	f.created = &out
	return &out, nil
}

func (f *fakeAgendaRepo) GetByID(ctx context.Context, id int64) (*domain.AgendaConfig, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.stored, nil
}

func (f *fakeAgendaRepo) Update(ctx context.Context, agenda *domain.AgendaConfig) (*domain.AgendaConfig, error) {
	f.updated = agenda
	return agenda, nil
}

func (f *fakeAgendaRepo) ListByOrganization(ctx context.Context, organizationID int64, activeOnly bool) ([]*domain.AgendaConfig, error) {
	if f.stored == nil {
		return nil, nil
	}
	return []*domain.AgendaConfig{f.stored}, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func validSaveRequest() *models.SaveAgendaRequest {
	day := models.DayScheduleInput{Enabled: true, Start: "09:00", End: "18:00"}
	return &models.SaveAgendaRequest{
		OrganizationID:      10,
		Name:                "Consultas",
		Color:               "#3366FF",
		SlotDurationMinutes: 30,
		MinAdvanceHours:     2,
		MaxAdvanceDays:      30,
		Timezone:            "America/Sao_Paulo",
		WorkingHours: models.WeekScheduleInput{
			Monday:    day,
			Tuesday:   day,
			Wednesday: day,
			Thursday:  day,
			Friday:    day,
		},
		Breaks: []models.BreakInput{
			{Start: "12:00", End: "13:00", Days: weekdays(1, 2, 3, 4, 5)},
		},
		ReminderHoursBefore: 24,
		SendConfirmation:    true,
		IsActive:            true,
	}
}

func weekdays(days ...int) []time.Weekday {
	out := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		out = append(out, time.Weekday(d))
	}
	return out
}

func TestCreate_Valid(t *testing.T) {
	repo := &fakeAgendaRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), validSaveRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "America/Sao_Paulo", resp.Timezone)
	require.NotNil(t, repo.created)
	assert.True(t, repo.created.WorkingHours.Monday.Enabled)
}

func TestCreate_DefaultsTimezone(t *testing.T) {
	repo := &fakeAgendaRepo{}
	svc := NewService(repo, nopLogger{})

	req := validSaveRequest()
	req.Timezone = ""

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTimezone, repo.created.Timezone)
}

func TestCreate_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *models.SaveAgendaRequest)
	}{
		{name: "missing name", mutate: func(r *models.SaveAgendaRequest) { r.Name = "" }},
		{name: "zero slot duration", mutate: func(r *models.SaveAgendaRequest) { r.SlotDurationMinutes = 0 }},
		{name: "zero max advance", mutate: func(r *models.SaveAgendaRequest) { r.MaxAdvanceDays = 0 }},
		{name: "bad color", mutate: func(r *models.SaveAgendaRequest) { r.Color = "blue" }},
		{name: "unknown timezone", mutate: func(r *models.SaveAgendaRequest) { r.Timezone = "Mars/Olympus" }},
		{
			name: "start after end on enabled day",
			mutate: func(r *models.SaveAgendaRequest) {
				r.WorkingHours.Monday = models.DayScheduleInput{Enabled: true, Start: "18:00", End: "09:00"}
			},
		},
		{
			name: "start equals end on enabled day",
			mutate: func(r *models.SaveAgendaRequest) {
				r.WorkingHours.Monday = models.DayScheduleInput{Enabled: true, Start: "09:00", End: "09:00"}
			},
		},
		{
			name: "bad wall time format",
			mutate: func(r *models.SaveAgendaRequest) {
				r.WorkingHours.Monday = models.DayScheduleInput{Enabled: true, Start: "9am", End: "18:00"}
			},
		},
		{
			name: "inverted break",
			mutate: func(r *models.SaveAgendaRequest) {
				r.Breaks = []models.BreakInput{{Start: "13:00", End: "12:00", Days: weekdays(1)}}
			},
		},
		{
			name: "break without days",
			mutate: func(r *models.SaveAgendaRequest) {
				r.Breaks = []models.BreakInput{{Start: "12:00", End: "13:00"}}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeAgendaRepo{}, nopLogger{})
			req := validSaveRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestCreate_DisabledDayIgnoresWindow(t *testing.T) {
	svc := NewService(&fakeAgendaRepo{}, nopLogger{})

	// На выключенном дне окно не проверяется
	req := validSaveRequest()
	req.WorkingHours.Saturday = models.DayScheduleInput{Enabled: false, Start: "", End: ""}

	_, err := svc.Create(context.Background(), req)
	assert.NoError(t, err)
}

func TestGetByID_Scoping(t *testing.T) {
	stored := validSaveRequest().ToDomain()
	stored.ID = 5

	svc := NewService(&fakeAgendaRepo{stored: stored}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 5, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)

	_, err = svc.GetByID(context.Background(), 5, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeAgendaRepo{getErr: agendaRepo.ErrAgendaNotFound}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 5, 10)
	assert.ErrorIs(t, err, ErrAgendaNotFound)
}

func TestUpdate_PreservesIdentity(t *testing.T) {
	stored := validSaveRequest().ToDomain()
	stored.ID = 5
	repo := &fakeAgendaRepo{stored: stored}
	svc := NewService(repo, nopLogger{})

	req := validSaveRequest()
	req.Name = "Consultas atualizadas"

	resp, err := svc.Update(context.Background(), 5, req)
	require.NoError(t, err)

	// ID и организация берутся из хранимой агенды, не из запроса
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, int64(10), resp.OrganizationID)
	assert.Equal(t, "Consultas atualizadas", resp.Name)
	require.NotNil(t, repo.updated)
	assert.Equal(t, int64(5), repo.updated.ID)
}
