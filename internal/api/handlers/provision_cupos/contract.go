package provision_cupos

import (
	"context"

	provisionCupos "github.com/lab-agenda/turnero-service/internal/usecase/provision_cupos"
)

type ProvisionCuposUseCase interface {
	Execute(ctx context.Context, req *provisionCupos.Request) (*provisionCupos.Summary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
