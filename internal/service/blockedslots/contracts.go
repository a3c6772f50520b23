package blockedslots

import (
	"context"
	"time"

	"github.com/m04kA/PMC-SchedulingService/internal/domain"
)

// BlockedSlotRepository интерфейс репозитория блокировок
type BlockedSlotRepository interface {
	Create(ctx context.Context, slot *domain.BlockedSlot) (*domain.BlockedSlot, error)
	GetByID(ctx context.Context, id int64) (*domain.BlockedSlot, error)
	GetByPractitioner(ctx context.Context, practitionerID int64, from *time.Time) ([]*domain.BlockedSlot, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
