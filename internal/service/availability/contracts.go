package availability

import (
	"context"

	"github.com/m04kA/PMC-SchedulingService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория расписаний
type AvailabilityRepository interface {
	GetByPractitioner(ctx context.Context, userID int64) (*domain.AvailabilityModel, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
