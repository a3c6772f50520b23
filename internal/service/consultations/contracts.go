package consultations

import (
	"context"

	"github.com/m04kA/PMC-SchedulingService/internal/domain"
)

// ConsultationRepository интерфейс репозитория консультаций
type ConsultationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Consultation, error)
	GetByPractitionerWithFilter(ctx context.Context, filter domain.PractitionerConsultationsFilter) ([]*domain.Consultation, error)
	Cancel(ctx context.Context, id int64, status domain.ConsultationStatus, reason string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
