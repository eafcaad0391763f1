package models

import (
	"time"

	"github.com/m04kA/SMC-AssignmentService/internal/domain"
)

// ProviderResponse ответ с данными провайдера
type ProviderResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Phone           string   `json:"phone"`
	ServiceCategory string   `json:"serviceCategory"`
	City            string   `json:"city"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	ServiceRadiusKm *float64 `json:"serviceRadiusKm,omitempty"`
	IsVerified      bool     `json:"isVerified"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProviderListResponse ответ со списком провайдеров
type ProviderListResponse struct {
	Providers []ProviderResponse `json:"providers"`
}

// ListProvidersRequest параметры фильтрации списка провайдеров
type ListProvidersRequest struct {
	City            *string
	ServiceCategory *string
	IsVerified      *bool
}

// FromDomainProvider конвертирует domain модель в DTO
func FromDomainProvider(p *domain.Provider) *ProviderResponse {
	if p == nil {
		return nil
	}

	return &ProviderResponse{
		ID:              p.ID,
		Name:            p.Name,
		Phone:           p.Phone,
		ServiceCategory: p.ServiceCategory,
		City:            p.City,
		Latitude:        p.Latitude,
		Longitude:       p.Longitude,
		ServiceRadiusKm: p.ServiceRadiusKm,
		IsVerified:      p.IsVerified,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// FromDomainProviderList конвертирует список domain моделей в DTO
func FromDomainProviderList(providers []*domain.Provider) *ProviderListResponse {
	resp := &ProviderListResponse{
		Providers: make([]ProviderResponse, 0, len(providers)),
	}

	for _, provider := range providers {
		if providerResp := FromDomainProvider(provider); providerResp != nil {
			resp.Providers = append(resp.Providers, *providerResp)
		}
	}

	return resp
}
