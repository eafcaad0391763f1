package providers

import (
	"context"

	"github.com/m04kA/SMC-AssignmentService/internal/domain"
)

// ProviderRepository интерфейс репозитория провайдеров
type ProviderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
	ListWithFilter(ctx context.Context, filter domain.ProvidersFilter) ([]*domain.Provider, error)
	SetVerified(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
