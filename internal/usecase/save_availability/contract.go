package save_availability

import (
	"context"

	"github.com/m04kA/PMC-SchedulingService/internal/domain"
	"github.com/m04kA/PMC-SchedulingService/internal/integrations/staffservice"
)

// AvailabilityRepository интерфейс репозитория моделей доступности
type AvailabilityRepository interface {
	Upsert(ctx context.Context, model *domain.AvailabilityModel) (*domain.AvailabilityModel, error)
}

// StaffServiceClient интерфейс клиента справочника сотрудников
type StaffServiceClient interface {
	GetPractitioner(ctx context.Context, practitionerID int64) (*staffservice.Practitioner, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
