package get_eligible_providers

import (
	"context"

	"github.com/m04kA/SMC-AssignmentService/internal/usecase/find_eligible_providers"
)

type FindEligibleProvidersUseCase interface {
	Execute(ctx context.Context, req *find_eligible_providers.Request) (*find_eligible_providers.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
