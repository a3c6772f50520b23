package get_availability

import (
	"context"

	"github.com/m04kA/PMC-SchedulingService/internal/service/availability/models"
)

type AvailabilityService interface {
	GetByPractitioner(ctx context.Context, practitionerID int64) (*models.AvailabilityModelResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
