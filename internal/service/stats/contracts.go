package stats

import (
	"context"

	"github.com/m04kA/SMC-AssignmentService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CountByStatus(ctx context.Context) (map[domain.BookingStatus]int64, error)
}

// ProviderRepository интерфейс репозитория провайдеров
type ProviderRepository interface {
	CountByVerification(ctx context.Context) (verified int64, unverified int64, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
