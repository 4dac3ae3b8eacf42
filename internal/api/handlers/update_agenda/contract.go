package update_agenda

import (
	"context"

	"github.com/zapvenda/ZV-AgendaService/internal/service/agendas/models"
)

type AgendasService interface {
	Update(ctx context.Context, id int64, req *models.SaveAgendaRequest) (*models.AgendaResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
