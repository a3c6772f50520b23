package get_practitioner_consultations

import (
	"context"

	"github.com/m04kA/PMC-SchedulingService/internal/service/consultations/models"
)

type ConsultationService interface {
	GetPractitionerConsultations(ctx context.Context, req *models.GetPractitionerConsultationsRequest) (*models.ConsultationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
