package assign_provider

import (
	"time"

	"github.com/m04kA/SMC-AssignmentService/internal/domain"
	assignUC "github.com/m04kA/SMC-AssignmentService/internal/usecase/assign_provider"
)

// AssignProviderRequest HTTP request model
type AssignProviderRequest struct {
	ProviderID int64 `json:"providerId"`
}

// AssignProviderResponse HTTP response model
type AssignProviderResponse struct {
	ID              int64     `json:"id"`
	Status          string    `json:"status"`
	ProviderID      int64     `json:"providerId"`
	CustomerID      int64     `json:"customerId"`
	ServiceName     string    `json:"serviceName"`
	ServiceCategory string    `json:"serviceCategory"`
	City            string    `json:"city"`
	BookingDate     string    `json:"bookingDate"` // "2025-10-15"
	StartTime       string    `json:"startTime"`   // "10:00"
	DurationMinutes int       `json:"durationMinutes"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP модель
func FromUseCaseResponse(resp *assignUC.Response) *AssignProviderResponse {
	return &AssignProviderResponse{
		ID:              resp.ID,
		Status:          resp.Status,
		ProviderID:      resp.ProviderID,
		CustomerID:      resp.CustomerID,
		ServiceName:     resp.ServiceName,
		ServiceCategory: resp.ServiceCategory,
		City:            resp.City,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		UpdatedAt:       resp.UpdatedAt,
	}
}
