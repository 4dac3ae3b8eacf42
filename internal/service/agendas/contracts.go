package agendas

import (
	"context"

	"github.com/zapvenda/ZV-AgendaService/internal/domain"
)

// AgendaRepository интерфейс репозитория агенд
type AgendaRepository interface {
	Create(ctx context.Context, agenda *domain.AgendaConfig) (*domain.AgendaConfig, error)
	GetByID(ctx context.Context, id int64) (*domain.AgendaConfig, error)
	Update(ctx context.Context, agenda *domain.AgendaConfig) (*domain.AgendaConfig, error)
	ListByOrganization(ctx context.Context, organizationID int64, activeOnly bool) ([]*domain.AgendaConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
