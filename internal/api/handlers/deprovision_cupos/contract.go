package deprovision_cupos

import (
	"context"

	deprovisionCupos "github.com/lab-agenda/turnero-service/internal/usecase/deprovision_cupos"
)

type DeprovisionCuposUseCase interface {
	Execute(ctx context.Context, req *deprovisionCupos.Request) (*deprovisionCupos.Summary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
