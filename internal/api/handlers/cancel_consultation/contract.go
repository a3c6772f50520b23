package cancel_consultation

import (
	"context"

	"github.com/m04kA/PMC-SchedulingService/internal/service/consultations/models"
)

type ConsultationService interface {
	Cancel(ctx context.Context, consultationID int64, req *models.CancelConsultationRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
