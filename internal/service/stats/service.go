package stats

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AssignmentService/internal/domain"
	"github.com/m04kA/SMC-AssignmentService/internal/service/stats/models"
)

// Service сервис сводной статистики для дашборда консоли
type Service struct {
	bookingRepo  BookingRepository
	providerRepo ProviderRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(bookingRepo BookingRepository, providerRepo ProviderRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		providerRepo: providerRepo,
		logger:       logger,
	}
}

// GetDashboardStats собирает счетчики бронирований и провайдеров
func (s *Service) GetDashboardStats(ctx context.Context) (*models.DashboardStatsResponse, error) {
	byStatus, err := s.bookingRepo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("GetDashboardStats: failed to count bookings: %v", err)
		return nil, fmt.Errorf("%w: GetDashboardStats - failed to count bookings: %v", ErrInternal, err)
	}

	verified, unverified, err := s.providerRepo.CountByVerification(ctx)
	if err != nil {
		s.logger.Error("GetDashboardStats: failed to count providers: %v", err)
		return nil, fmt.Errorf("%w: GetDashboardStats - failed to count providers: %v", ErrInternal, err)
	}

	resp := &models.DashboardStatsResponse{
		Bookings: models.BookingStats{
			Pending:    byStatus[domain.StatusPending],
			Assigned:   byStatus[domain.StatusAssigned],
			InProgress: byStatus[domain.StatusInProgress],
			Completed:  byStatus[domain.StatusCompleted],
			Cancelled:  byStatus[domain.StatusCancelled],
		},
		Providers: models.ProviderStats{
			Verified:   verified,
			Unverified: unverified,
			Total:      verified + unverified,
		},
	}

	for _, count := range byStatus {
		resp.Bookings.Total += count
	}

	return resp, nil
}
