package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AssignmentService/internal/domain"
	providerRepo "github.com/m04kA/SMC-AssignmentService/internal/infra/storage/provider"
	"github.com/m04kA/SMC-AssignmentService/internal/service/providers/models"
)

// Service сервис управления провайдерами для админ-консоли
type Service struct {
	providerRepo ProviderRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса провайдеров
func NewService(providerRepo ProviderRepository, logger Logger) *Service {
	return &Service{
		providerRepo: providerRepo,
		logger:       logger,
	}
}

// GetByID получает провайдера по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ProviderResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: provider id must be positive", ErrInvalidInput)
	}

	provider, err := s.providerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			s.logger.Warn("GetByID: provider id=%d not found", id)
			return nil, ErrProviderNotFound
		}
		s.logger.Error("GetByID: repository error for provider id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProvider(provider), nil
}

// List получает список провайдеров с опциональными фильтрами
func (s *Service) List(ctx context.Context, req *models.ListProvidersRequest) (*models.ProviderListResponse, error) {
	filter := domain.ProvidersFilter{}
	if req != nil {
		filter.City = req.City
		filter.ServiceCategory = req.ServiceCategory
		filter.IsVerified = req.IsVerified
	}

	providers, err := s.providerRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d providers", len(providers))
	return models.FromDomainProviderList(providers), nil
}

// Verify помечает провайдера верифицированным
// Повторная верификация не является ошибкой
func (s *Service) Verify(ctx context.Context, id int64) (*models.ProviderResponse, error) {
	s.logger.Info("Verify: verifying provider id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: provider id must be positive", ErrInvalidInput)
	}

	if err := s.providerRepo.SetVerified(ctx, id); err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			s.logger.Warn("Verify: provider id=%d not found", id)
			return nil, ErrProviderNotFound
		}
		s.logger.Error("Verify: repository error for provider id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Verify - repository error: %v", ErrInternal, err)
	}

	provider, err := s.providerRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Verify: failed to reload provider id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Verify - failed to reload provider: %v", ErrInternal, err)
	}

	return models.FromDomainProvider(provider), nil
}
