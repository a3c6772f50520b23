package book_consultation

import (
	"context"
	"time"

	"github.com/m04kA/PMC-SchedulingService/internal/domain"
	"github.com/m04kA/PMC-SchedulingService/internal/integrations/staffservice"
	checkAvailability "github.com/m04kA/PMC-SchedulingService/internal/usecase/check_availability"
)

// ConsultationRepository интерфейс репозитория консультаций
type ConsultationRepository interface {
	Create(ctx context.Context, c *domain.Consultation) (*domain.Consultation, error)
}

// AvailabilityChecker повторная проверка доступности перед записью.
// Запускается внутри serializable-транзакции: репозитории достают
// транзакцию из контекста, и выборка пересекающихся консультаций
// выполняется с FOR UPDATE - два параллельных бронирования одного
// интервала не могут пройти проверку одновременно.
type AvailabilityChecker interface {
	Execute(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error)
}

// StaffServiceClient интерфейс клиента справочника сотрудников
type StaffServiceClient interface {
	GetPractitioner(ctx context.Context, practitionerID int64) (*staffservice.Practitioner, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
