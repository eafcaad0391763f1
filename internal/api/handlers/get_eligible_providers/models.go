package get_eligible_providers

import (
	"github.com/m04kA/SMC-AssignmentService/internal/domain"
	"github.com/m04kA/SMC-AssignmentService/internal/usecase/find_eligible_providers"
)

// EligibleProvidersResponse HTTP response model
type EligibleProvidersResponse struct {
	BookingID       int64               `json:"bookingId"`
	BookingDate     string              `json:"bookingDate"` // "2025-10-15"
	StartTime       string              `json:"startTime"`   // "10:00"
	DurationMinutes int                 `json:"durationMinutes"`
	Providers       []ProviderCandidate `json:"providers"`
}

// ProviderCandidate подходящий провайдер в порядке близости
type ProviderCandidate struct {
	ProviderID int64   `json:"providerId"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	City       string  `json:"city"`
	DistanceKm float64 `json:"distanceKm"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP модель
func FromUseCaseResponse(resp *find_eligible_providers.Response) *EligibleProvidersResponse {
	providers := make([]ProviderCandidate, 0, len(resp.Candidates))
	for _, c := range resp.Candidates {
		providers = append(providers, ProviderCandidate{
			ProviderID: c.ProviderID,
			Name:       c.Name,
			Phone:      c.Phone,
			City:       c.City,
			DistanceKm: c.DistanceKm,
		})
	}

	return &EligibleProvidersResponse{
		BookingID:       resp.BookingID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Providers:       providers,
	}
}
