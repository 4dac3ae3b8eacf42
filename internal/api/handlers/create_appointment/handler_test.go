package create_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapvenda/ZV-AgendaService/internal/api/handlers"
	"github.com/zapvenda/ZV-AgendaService/internal/api/middleware"
	createAppointment "github.com/zapvenda/ZV-AgendaService/internal/usecase/create_appointment"
)

type fakeUseCase struct {
	lastReq *createAppointment.Request
	resp    *createAppointment.Response
	err     error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func serve(t *testing.T, uc *fakeUseCase, body string, withAuth bool) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})
	wrapped := middleware.Auth(nopLogger{})(http.HandlerFunc(handler.Handle))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	if withAuth {
		req.Header.Set("X-User-ID", "3")
		req.Header.Set("X-Organization-ID", "10")
	}

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)
	return rec
}

func validBody() string {
	return `{
		"agendaId": 1,
		"startTime": "2026-09-07T10:00:00-03:00",
		"endTime": "2026-09-07T10:30:00-03:00",
		"clientPhone": "+5511999990000",
		"clientName": "Maria"
	}`
}

func TestHandle_Created(t *testing.T) {
	agendaID := int64(1)
	uc := &fakeUseCase{resp: &createAppointment.Response{
		ID:             42,
		AgendaID:       &agendaID,
		OrganizationID: 10,
		ClientID:       7,
		StartTime:      time.Date(2026, 9, 7, 13, 0, 0, 0, time.UTC),
		EndTime:        time.Date(2026, 9, 7, 13, 30, 0, 0, time.UTC),
		Status:         "scheduled",
		CreatedAt:      time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:      time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}}

	rec := serve(t, uc, validBody(), true)

	assert.Equal(t, http.StatusCreated, rec.Code)

	// Организация приходит из заголовков, зонированное время парсится в инстант
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, int64(10), uc.lastReq.OrganizationID)
	assert.True(t, uc.lastReq.StartTime.Equal(time.Date(2026, 9, 7, 13, 0, 0, 0, time.UTC)))

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "scheduled", resp.Status)
}

func TestHandle_MissingAuthHeaders(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(t, uc, validBody(), false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.lastReq)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := serve(t, &fakeUseCase{}, `{"agendaId": `, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidTime(t *testing.T) {
	body := `{"agendaId": 1, "startTime": "amanha", "endTime": "depois", "clientPhone": "+55119"}`
	rec := serve(t, &fakeUseCase{}, body, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "slot taken", err: createAppointment.ErrSlotTaken, wantStatus: http.StatusConflict, wantMsg: "slot already booked"},
		{name: "agenda not found", err: createAppointment.ErrAgendaNotFound, wantStatus: http.StatusNotFound, wantMsg: "agenda not found"},
		{name: "agenda inactive", err: createAppointment.ErrAgendaInactive, wantStatus: http.StatusNotFound, wantMsg: "agenda is not active"},
		{name: "too soon", err: createAppointment.ErrTooSoon, wantStatus: http.StatusBadRequest, wantMsg: "minimum advance"},
		{name: "too far", err: createAppointment.ErrTooFar, wantStatus: http.StatusBadRequest, wantMsg: "too far in advance"},
		{name: "outside working hours", err: createAppointment.ErrOutsideWorkingHours, wantStatus: http.StatusBadRequest, wantMsg: "outside working hours"},
		{name: "break conflict", err: createAppointment.ErrBreakConflict, wantStatus: http.StatusBadRequest, wantMsg: "break"},
		{name: "internal", err: createAppointment.ErrInternal, wantStatus: http.StatusInternalServerError, wantMsg: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &fakeUseCase{err: tt.err}, validBody(), true)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var errResp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.Equal(t, tt.wantStatus, errResp.Code)
			assert.Contains(t, errResp.Message, tt.wantMsg)
		})
	}
}
