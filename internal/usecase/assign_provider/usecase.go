package assign_provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-AssignmentService/internal/domain"
	"github.com/m04kA/SMC-AssignmentService/internal/infra/events"
	bookingRepo "github.com/m04kA/SMC-AssignmentService/internal/infra/storage/booking"
	providerRepo "github.com/m04kA/SMC-AssignmentService/internal/infra/storage/provider"
)

// pqSerializationFailure код ошибки PostgreSQL для провала сериализации
const pqSerializationFailure = "40001"

// UseCase use case назначения провайдера на бронирование
// Проверка предусловий и запись выполняются одной сериализуемой транзакцией:
// из двух конкурентных назначений одного бронирования или одного слота
// провайдера успешным будет ровно одно
type UseCase struct {
	bookingRepo  BookingRepository
	providerRepo ProviderRepository
	txManager    TransactionManager
	publisher    EventPublisher
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	providerRepo ProviderRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		providerRepo: providerRepo,
		txManager:    txManager,
		publisher:    publisher,
		logger:       logger,
	}
}

// Execute выполняет назначение провайдера
// Предусловия проверяются по порядку, падает первое нарушенное:
// бронирование существует -> статус pending -> провайдер существует и
// пригоден -> календарь свободен. Повторный assign по уже назначенному
// бронированию отклоняется с ErrBookingNotPending
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AssignProvider: booking=%d, provider=%d", req.BookingID, req.ProviderID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AssignProvider: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Все проверки и записи - одна атомарная единица
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование (внутри транзакции строка блокируется)
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("AssignProvider: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("AssignProvider: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Назначать можно только ожидающее бронирование
		if !booking.CanBeAssigned() {
			uc.logger.Warn("AssignProvider: booking id=%d is not pending, status=%s",
				req.BookingID, booking.Status)
			return ErrBookingNotPending
		}

		// 2.3. Получаем провайдера и проверяем жесткие правила пригодности
		provider, err := uc.providerRepo.GetByID(txCtx, req.ProviderID)
		if err != nil {
			if errors.Is(err, providerRepo.ErrProviderNotFound) {
				uc.logger.Warn("AssignProvider: provider id=%d not found", req.ProviderID)
				return ErrProviderNotFound
			}
			uc.logger.Error("AssignProvider: failed to get provider id=%d: %v", req.ProviderID, err)
			return fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
		}

		if err := validateProviderEligible(provider, booking); err != nil {
			uc.logger.Warn("AssignProvider: provider id=%d not eligible for booking id=%d: %v",
				req.ProviderID, req.BookingID, err)
			return err
		}

		// 2.4. Проверяем календарь провайдера на пересечения
		conflict, err := uc.providerRepo.HasConflict(
			txCtx,
			provider.ID,
			booking.BookingDate,
			booking.StartTime,
			booking.DurationMinutes,
		)
		if err != nil {
			uc.logger.Error("AssignProvider: conflict check failed for provider id=%d: %v",
				provider.ID, err)
			return fmt.Errorf("%w: failed to check provider calendar: %v", ErrInternal, err)
		}
		if conflict {
			uc.logger.Warn("AssignProvider: provider id=%d already committed for booking id=%d slot %s %s",
				provider.ID, booking.ID, booking.BookingDate.Format(domain.DateFormat), booking.SlotLabel())
			return ErrSlotConflict
		}

		// 2.5. Добавляем обязательство в календарь
		// UNIQUE (provider_id, commitment_date, start_time) ловит гонку,
		// прошедшую мимо проверки чтением
		commitment := &domain.Commitment{
			ProviderID:      provider.ID,
			BookingID:       booking.ID,
			CommitmentDate:  booking.BookingDate,
			StartTime:       booking.StartTime,
			DurationMinutes: booking.DurationMinutes,
		}
		if _, err := uc.providerRepo.AppendCommitment(txCtx, commitment); err != nil {
			if errors.Is(err, providerRepo.ErrSlotTaken) {
				uc.logger.Warn("AssignProvider: slot already taken, provider id=%d, booking id=%d",
					provider.ID, booking.ID)
				return ErrSlotConflict
			}
			uc.logger.Error("AssignProvider: failed to append commitment: %v", err)
			return fmt.Errorf("%w: failed to append commitment: %v", ErrInternal, err)
		}

		// 2.6. Compare-and-set перевода pending -> assigned
		updated, err := uc.bookingRepo.UpdateStatusCAS(
			txCtx,
			booking.ID,
			domain.StatusPending,
			domain.StatusAssigned,
			provider.ID,
		)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrStatusNotMatched) {
				uc.logger.Warn("AssignProvider: booking id=%d lost status race", booking.ID)
				return ErrBookingNotPending
			}
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("AssignProvider: failed to update booking status: %v", err)
			return fmt.Errorf("%w: failed to update booking status: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		// Провал сериализации означает проигранную гонку, но не говорит какую:
		// перечитываем бронирование и смотрим, что успел сделать конкурент
		if isSerializationFailure(err) {
			uc.logger.Warn("AssignProvider: serialization failure, booking=%d, provider=%d",
				req.BookingID, req.ProviderID)
			return nil, uc.classifyLostRace(ctx, req.BookingID)
		}
		return nil, err
	}

	uc.logger.Info("AssignProvider: booking id=%d assigned to provider id=%d", result.ID, req.ProviderID)

	// 3. Публикуем событие после коммита, best effort
	uc.publishAssigned(ctx, result)

	return &Response{
		ID:              result.ID,
		Status:          string(result.Status),
		ProviderID:      req.ProviderID,
		CustomerID:      result.CustomerID,
		ServiceName:     result.ServiceName,
		ServiceCategory: result.ServiceCategory,
		City:            result.City,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// publishAssigned публикует событие назначения
// Ошибка публикации логируется и не откатывает назначение:
// источник истины - состояние бронирования в БД
func (uc *UseCase) publishAssigned(ctx context.Context, booking *domain.Booking) {
	if booking.ProviderID == nil {
		return
	}

	event := events.BookingAssignedEvent{
		BookingID:       booking.ID,
		ProviderID:      *booking.ProviderID,
		CustomerID:      booking.CustomerID,
		ServiceCategory: booking.ServiceCategory,
		City:            booking.City,
		BookingDate:     booking.BookingDate.Format(domain.DateFormat),
		StartTime:       booking.StartTime.String(),
		DurationMinutes: booking.DurationMinutes,
		AssignedAt:      time.Now().UTC().Format(time.RFC3339),
	}

	if err := uc.publisher.PublishBookingAssigned(ctx, event); err != nil {
		uc.logger.Error("AssignProvider: failed to publish booking.assigned for booking id=%d: %v",
			booking.ID, err)
	}
}

// classifyLostRace определяет, какую гонку проиграла упавшая транзакция.
// Чтение выполняется вне транзакции и видит результат конкурента:
// если бронирование уже не pending, проиграна гонка за само бронирование;
// иначе конкурент занял слот провайдера
func (uc *UseCase) classifyLostRace(ctx context.Context, bookingID int64) error {
	booking, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		uc.logger.Error("AssignProvider: failed to re-read booking id=%d after lost race: %v",
			bookingID, err)
		return ErrSlotConflict
	}

	if !booking.CanBeAssigned() {
		uc.logger.Warn("AssignProvider: booking id=%d taken by concurrent assign, status=%s",
			bookingID, booking.Status)
		return ErrBookingNotPending
	}

	return ErrSlotConflict
}

// isSerializationFailure проверяет, что ошибка - провал сериализуемой транзакции
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqSerializationFailure
}
