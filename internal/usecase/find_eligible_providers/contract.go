package find_eligible_providers

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AssignmentService/internal/domain"
	"github.com/m04kA/SMC-AssignmentService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// ProviderRepository интерфейс каталога провайдеров
type ProviderRepository interface {
	ListVerifiedByCategoryAndCity(ctx context.Context, category, city string) ([]*domain.Provider, error)
	HasConflict(ctx context.Context, providerID int64, date time.Time, startTime types.TimeString, durationMinutes int) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
