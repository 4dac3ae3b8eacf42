package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapvenda/ZV-AgendaService/internal/domain"
	"github.com/zapvenda/ZV-AgendaService/internal/events"
	apptRepo "github.com/zapvenda/ZV-AgendaService/internal/infra/storage/appointment"
	"github.com/zapvenda/ZV-AgendaService/internal/service/appointments/models"
	"github.com/zapvenda/ZV-AgendaService/pkg/ptr"
)

type fakeApptRepo struct {
	stored       *domain.Appointment
	getErr       error
	cancelled    bool
	cancelReason string
	newStatus    *domain.AppointmentStatus
	lastFilter   *domain.AgendaAppointmentsFilter
}

func (f *fakeApptRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.stored, nil
}

func (f *fakeApptRepo) GetByAgendaWithFilter(ctx context.Context, filter domain.AgendaAppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = &filter
	if f.stored == nil {
		return nil, nil
	}
	return []*domain.Appointment{f.stored}, nil
}

func (f *fakeApptRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	f.newStatus = &status
	return nil
}

func (f *fakeApptRepo) Cancel(ctx context.Context, id int64, reason string) error {
	f.cancelled = true
	f.cancelReason = reason
	return nil
}

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

type fakePublisher struct {
	events []events.AppointmentEvent
}

func (f *fakePublisher) PublishAppointmentEvent(ctx context.Context, evt events.AppointmentEvent) error {
	f.events = append(f.events, evt)
	return nil
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func storedAppointment(status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:             5,
		AgendaID:       ptr.Ptr(int64(1)),
		OrganizationID: 10,
		ClientID:       7,
		StartTime:      time.Date(2026, 9, 7, 13, 0, 0, 0, time.UTC),
		EndTime:        time.Date(2026, 9, 7, 13, 30, 0, 0, time.UTC),
		Status:         status,
	}
}

func newService(repo *fakeApptRepo, publisher *fakePublisher, now time.Time) *Service {
	svc := NewService(repo, &fakeAgendaRepo{agenda: &domain.AgendaConfig{ID: 1, OrganizationID: 10}}, publisher, nopLogger{})
	svc.timeProvider = &fakeTimeProvider{now: now}
	return svc
}

func TestGetByID_Scoping(t *testing.T) {
	repo := &fakeApptRepo{stored: storedAppointment(domain.StatusScheduled)}
	svc := newService(repo, &fakePublisher{}, time.Now())

	resp, err := svc.GetByID(context.Background(), 5, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)

	_, err = svc.GetByID(context.Background(), 5, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeApptRepo{getErr: apptRepo.ErrAppointmentNotFound}
	svc := newService(repo, &fakePublisher{}, time.Now())

	_, err := svc.GetByID(context.Background(), 5, 10)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancel_Success(t *testing.T) {
	repo := &fakeApptRepo{stored: storedAppointment(domain.StatusScheduled)}
	publisher := &fakePublisher{}
	svc := newService(repo, publisher, time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC))

	err := svc.Cancel(context.Background(), 5, &models.CancelAppointmentRequest{
		OrganizationID: 10,
		Reason:         "cliente pediu",
	})
	require.NoError(t, err)

	assert.True(t, repo.cancelled)
	assert.Equal(t, "cliente pediu", repo.cancelReason)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, events.EventAppointmentCancelled, publisher.events[0].EventType)
}

func TestCancel_TerminalStatusesRejected(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{domain.StatusCancelled, domain.StatusCompleted, domain.StatusNoShow} {
		t.Run(string(status), func(t *testing.T) {
			repo := &fakeApptRepo{stored: storedAppointment(status)}
			svc := newService(repo, &fakePublisher{}, time.Date(2026, 9, 8, 10, 0, 0, 0, time.UTC))

			err := svc.Cancel(context.Background(), 5, &models.CancelAppointmentRequest{OrganizationID: 10})
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.False(t, repo.cancelled)
		})
	}
}

func TestUpdateStatus_Transitions(t *testing.T) {
	beforeEnd := time.Date(2026, 9, 7, 13, 0, 0, 0, time.UTC)
	afterEnd := time.Date(2026, 9, 7, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		from    domain.AppointmentStatus
		to      string
		now     time.Time
		wantErr error
	}{
		{name: "scheduled to confirmed", from: domain.StatusScheduled, to: "confirmed", now: beforeEnd},
		{name: "confirmed to completed", from: domain.StatusConfirmed, to: "completed", now: afterEnd},
		{name: "scheduled to no_show after end", from: domain.StatusScheduled, to: "no_show", now: afterEnd},
		{name: "no_show before end rejected", from: domain.StatusScheduled, to: "no_show", now: beforeEnd, wantErr: ErrInvalidTransition},
		{name: "scheduled to completed rejected", from: domain.StatusScheduled, to: "completed", now: afterEnd, wantErr: ErrInvalidTransition},
		{name: "completed is terminal", from: domain.StatusCompleted, to: "confirmed", now: afterEnd, wantErr: ErrInvalidTransition},
		{name: "unknown status", from: domain.StatusScheduled, to: "archived", now: beforeEnd, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeApptRepo{stored: storedAppointment(tt.from)}
			publisher := &fakePublisher{}
			svc := newService(repo, publisher, tt.now)

			err := svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{
				OrganizationID: 10,
				Status:         tt.to,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, repo.newStatus)
				assert.Empty(t, publisher.events)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, repo.newStatus)
			assert.Equal(t, domain.AppointmentStatus(tt.to), *repo.newStatus)

			require.Len(t, publisher.events, 1)
			evt := publisher.events[0]
			assert.Equal(t, events.EventAppointmentStatusChanged, evt.EventType)
			require.NotNil(t, evt.PreviousStatus)
			assert.Equal(t, string(tt.from), *evt.PreviousStatus)
		})
	}
}

func TestListByAgenda_Scoping(t *testing.T) {
	repo := &fakeApptRepo{stored: storedAppointment(domain.StatusScheduled)}
	svc := newService(repo, &fakePublisher{}, time.Now())

	resp, err := svc.ListByAgenda(context.Background(), &models.ListAgendaAppointmentsRequest{
		OrganizationID: 10,
		AgendaID:       1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	_, err = svc.ListByAgenda(context.Background(), &models.ListAgendaAppointmentsRequest{
		OrganizationID: 99,
		AgendaID:       1,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestListByAgenda_StatusFilter(t *testing.T) {
	repo := &fakeApptRepo{stored: storedAppointment(domain.StatusConfirmed)}
	svc := newService(repo, &fakePublisher{}, time.Now())

	_, err := svc.ListByAgenda(context.Background(), &models.ListAgendaAppointmentsRequest{
		OrganizationID: 10,
		AgendaID:       1,
		Status:         ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter)
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *repo.lastFilter.Status)

	_, err = svc.ListByAgenda(context.Background(), &models.ListAgendaAppointmentsRequest{
		OrganizationID: 10,
		AgendaID:       1,
		Status:         ptr.Ptr("archived"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
