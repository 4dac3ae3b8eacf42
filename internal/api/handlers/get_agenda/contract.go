package get_agenda

import (
	"context"

	"github.com/zapvenda/ZV-AgendaService/internal/service/agendas/models"
)

type AgendasService interface {
	GetByID(ctx context.Context, id int64, organizationID int64) (*models.AgendaResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
