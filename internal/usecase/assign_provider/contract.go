package assign_provider

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AssignmentService/internal/domain"
	"github.com/m04kA/SMC-AssignmentService/internal/infra/events"
	"github.com/m04kA/SMC-AssignmentService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatusCAS(ctx context.Context, id int64, expected, next domain.BookingStatus, providerID int64) (*domain.Booking, error)
}

// ProviderRepository интерфейс каталога провайдеров
type ProviderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
	HasConflict(ctx context.Context, providerID int64, date time.Time, startTime types.TimeString, durationMinutes int) (bool, error)
	AppendCommitment(ctx context.Context, commitment *domain.Commitment) (*domain.Commitment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс публикации событий назначений
type EventPublisher interface {
	PublishBookingAssigned(ctx context.Context, event events.BookingAssignedEvent) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
