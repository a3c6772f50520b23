package book_consultation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PMC-SchedulingService/internal/domain"
	staffClient "github.com/m04kA/PMC-SchedulingService/internal/integrations/staffservice"
	checkAvailability "github.com/m04kA/PMC-SchedulingService/internal/usecase/check_availability"
)

// UseCase use case записи пациента к врачу.
// Сама проверка доступности - чистое вычисление без блокировок, поэтому
// путь записи обязан повторить её внутри serializable-транзакции:
// check-then-act между проверкой и INSERT закрывается блокировкой
// пересекающихся строк (FOR UPDATE) и уровнем изоляции.
type UseCase struct {
	consultationRepo ConsultationRepository
	checker          AvailabilityChecker
	staffClient      StaffServiceClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	consultationRepo ConsultationRepository,
	checker AvailabilityChecker,
	staffClient StaffServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		consultationRepo: consultationRepo,
		checker:          checker,
		staffClient:      staffClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case записи к врачу
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookConsultation: practitioner=%d, patient=%d, start=%s, end=%s",
		req.PractitionerID, req.PatientID,
		req.Start.Format(domain.DateFormat+" "+domain.TimeFormat),
		req.End.Format(domain.DateFormat+" "+domain.TimeFormat))

	// 1. Валидация входных данных
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("BookConsultation: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем врача в справочнике сотрудников
	practitioner, err := uc.staffClient.GetPractitioner(ctx, req.PractitionerID)
	if err != nil {
		if errors.Is(err, staffClient.ErrPractitionerNotFound) {
			uc.logger.Warn("BookConsultation: practitioner id=%d not found", req.PractitionerID)
			return nil, ErrPractitionerNotFound
		}
		uc.logger.Error("BookConsultation: failed to get practitioner id=%d: %v", req.PractitionerID, err)
		return nil, fmt.Errorf("%w: failed to get practitioner: %v", ErrInternal, err)
	}

	if !practitioner.IsActive {
		uc.logger.Warn("BookConsultation: practitioner id=%d is not active", req.PractitionerID)
		return nil, ErrPractitionerInactive
	}

	// Переменная для хранения результата
	var result *domain.Consultation

	// 3. Проверка доступности и создание консультации в одной
	// serializable-транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Повторная проверка доступности. Внутри транзакции выборка
		// пересекающихся консультаций берет FOR UPDATE.
		check, err := uc.checker.Execute(txCtx, &checkAvailability.Request{
			PractitionerID: req.PractitionerID,
			Start:          req.Start,
			End:            req.End,
			CallerZone:     req.CallerZone,
		})
		if err != nil {
			switch {
			case errors.Is(err, checkAvailability.ErrInvalidInterval):
				return ErrInvalidInterval
			case errors.Is(err, checkAvailability.ErrInvalidTimezone):
				return fmt.Errorf("%w: %v", ErrInvalidTimezone, err)
			case errors.Is(err, checkAvailability.ErrInvalidInput):
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			default:
				return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
			}
		}

		if !check.Available {
			uc.logger.Warn("BookConsultation: slot not available for practitioner=%d", req.PractitionerID)
			return ErrSlotNotAvailable
		}

		// 3.2. Создаем консультацию
		consultation := &domain.Consultation{
			PractitionerID: req.PractitionerID,
			PatientID:      req.PatientID,
			OrganizationID: practitioner.OrganizationID,
			StartTime:      req.Start,
			EndTime:        req.End,
			Status:         domain.StatusScheduled,
			Notes:          req.Notes,
		}

		created, err := uc.consultationRepo.Create(txCtx, consultation)
		if err != nil {
			uc.logger.Error("BookConsultation: failed to create consultation: %v", err)
			return fmt.Errorf("%w: failed to create consultation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookConsultation: successfully created consultation id=%d", result.ID)

	return &Response{
		ID:             result.ID,
		PractitionerID: result.PractitionerID,
		PatientID:      result.PatientID,
		OrganizationID: result.OrganizationID,
		Start:          result.StartTime,
		End:            result.EndTime,
		Status:         string(result.Status),
		Notes:          result.Notes,
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}
