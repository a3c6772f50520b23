package save_availability

import (
	"context"

	saveAvailability "github.com/m04kA/PMC-SchedulingService/internal/usecase/save_availability"
)

type SaveAvailabilityUseCase interface {
	Execute(ctx context.Context, req *saveAvailability.Request) (*saveAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
