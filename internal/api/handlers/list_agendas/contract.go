package list_agendas

import (
	"context"

	"github.com/zapvenda/ZV-AgendaService/internal/service/agendas/models"
)

type AgendasService interface {
	ListByOrganization(ctx context.Context, organizationID int64, activeOnly bool) (*models.AgendaListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
