package get_agenda_appointments

import (
	"context"

	"github.com/zapvenda/ZV-AgendaService/internal/service/appointments/models"
)

type AppointmentsService interface {
	ListByAgenda(ctx context.Context, req *models.ListAgendaAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
