package check_availability

import (
	"context"

	"github.com/m04kA/PMC-SchedulingService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория моделей доступности
type AvailabilityRepository interface {
	GetByPractitioner(ctx context.Context, userID int64) (*domain.AvailabilityModel, error)
}

// BlockedSlotRepository интерфейс репозитория блокировок
type BlockedSlotRepository interface {
	GetOverlapping(ctx context.Context, practitionerID int64, window domain.TimeRange) ([]*domain.BlockedSlot, error)
}

// ConsultationRepository интерфейс репозитория консультаций
type ConsultationRepository interface {
	GetActiveOverlapping(ctx context.Context, practitionerID int64, window domain.TimeRange) ([]*domain.Consultation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
