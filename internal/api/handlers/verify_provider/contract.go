package verify_provider

import (
	"context"

	"github.com/m04kA/SMC-AssignmentService/internal/service/providers/models"
)

type ProviderService interface {
	Verify(ctx context.Context, id int64) (*models.ProviderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
