package assign_provider

import (
	"fmt"

	"github.com/m04kA/SMC-AssignmentService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.ProviderID <= 0 {
		return fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}

	return nil
}

// validateProviderEligible проверяет жесткие правила пригодности провайдера:
// верификация и совпадение категории услуг с бронированием
func validateProviderEligible(provider *domain.Provider, booking *domain.Booking) error {
	if !provider.IsVerified {
		return fmt.Errorf("%w: provider is not verified", ErrProviderNotEligible)
	}

	if provider.ServiceCategory != booking.ServiceCategory {
		return fmt.Errorf("%w: provider category %q does not match booking category %q",
			ErrProviderNotEligible, provider.ServiceCategory, booking.ServiceCategory)
	}

	return nil
}
