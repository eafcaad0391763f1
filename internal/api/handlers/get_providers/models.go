package get_providers

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-AssignmentService/internal/service/providers/models"
	"github.com/m04kA/SMC-AssignmentService/pkg/ptr"
)

// ParseListRequest разбирает query-параметры фильтрации
// Поддерживаются verified, city и category, все опциональны
func ParseListRequest(query url.Values) (*models.ListProvidersRequest, error) {
	req := &models.ListProvidersRequest{}

	if verifiedStr := query.Get("verified"); verifiedStr != "" {
		verified, err := strconv.ParseBool(verifiedStr)
		if err != nil {
			return nil, fmt.Errorf("invalid verified value: %q", verifiedStr)
		}
		req.IsVerified = ptr.Ptr(verified)
	}

	if city := query.Get("city"); city != "" {
		req.City = ptr.Ptr(city)
	}

	if category := query.Get("category"); category != "" {
		req.ServiceCategory = ptr.Ptr(category)
	}

	return req, nil
}
