package get_blocked_slots

import (
	"context"

	"github.com/m04kA/PMC-SchedulingService/internal/service/blockedslots/models"
)

type BlockedSlotService interface {
	GetByPractitioner(ctx context.Context, req *models.GetBlockedSlotsRequest) (*models.BlockedSlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
