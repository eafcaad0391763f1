package assign_provider

import (
	"context"

	assignUC "github.com/m04kA/SMC-AssignmentService/internal/usecase/assign_provider"
)

type AssignProviderUseCase interface {
	Execute(ctx context.Context, req *assignUC.Request) (*assignUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
