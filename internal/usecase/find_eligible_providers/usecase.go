package find_eligible_providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AssignmentService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AssignmentService/internal/infra/storage/booking"
)

// UseCase use case подбора провайдеров, пригодных для бронирования
// Чтение без блокировок: результат отражает состояние на момент запроса,
// авторитетная перепроверка выполняется в момент назначения
type UseCase struct {
	bookingRepo  BookingRepository
	providerRepo ProviderRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	providerRepo ProviderRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		providerRepo: providerRepo,
		logger:       logger,
	}
}

// Execute выполняет подбор кандидатов
// Пустой список кандидатов - корректный результат, а не ошибка
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindEligibleProviders: booking=%d", req.BookingID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindEligibleProviders: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("FindEligibleProviders: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("FindEligibleProviders: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Кандидатов подбирают только для ожидающих бронирований
	if !booking.IsPending() {
		uc.logger.Warn("FindEligibleProviders: booking id=%d is not pending, status=%s",
			req.BookingID, booking.Status)
		return nil, ErrBookingNotPending
	}

	// 4. Индексный запрос каталога: верифицированные провайдеры
	// нужной категории в городе бронирования
	providers, err := uc.providerRepo.ListVerifiedByCategoryAndCity(ctx, booking.ServiceCategory, booking.City)
	if err != nil {
		uc.logger.Error("FindEligibleProviders: failed to list providers for booking id=%d: %v",
			req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to list providers: %v", ErrInternal, err)
	}

	// 5. Фильтруем по географии и занятости календаря
	candidates := make([]Candidate, 0, len(providers))
	for _, provider := range providers {
		covers, distance := coversLocation(provider, booking)
		if !covers {
			continue
		}

		conflict, err := uc.providerRepo.HasConflict(
			ctx,
			provider.ID,
			booking.BookingDate,
			booking.StartTime,
			booking.DurationMinutes,
		)
		if err != nil {
			uc.logger.Error("FindEligibleProviders: conflict check failed for provider id=%d: %v",
				provider.ID, err)
			return nil, fmt.Errorf("%w: failed to check provider calendar: %v", ErrInternal, err)
		}
		if conflict {
			continue
		}

		candidates = append(candidates, Candidate{
			ProviderID: provider.ID,
			Name:       provider.Name,
			Phone:      provider.Phone,
			City:       provider.City,
			DistanceKm: distance,
		})
	}

	// 6. Детерминированный порядок: расстояние, затем ID
	sortCandidates(candidates)

	uc.logger.Info("FindEligibleProviders: booking=%d date=%s slot=%s candidates=%d",
		req.BookingID, booking.BookingDate.Format(domain.DateFormat), booking.SlotLabel(), len(candidates))

	return &Response{
		BookingID:       booking.ID,
		BookingDate:     booking.BookingDate,
		StartTime:       booking.StartTime,
		DurationMinutes: booking.DurationMinutes,
		Candidates:      candidates,
	}, nil
}
