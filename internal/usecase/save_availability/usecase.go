package save_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PMC-SchedulingService/internal/domain"
	staffClient "github.com/m04kA/PMC-SchedulingService/internal/integrations/staffservice"
	"github.com/m04kA/PMC-SchedulingService/pkg/timezone"
)

// UseCase use case сохранения недельного шаблона доступности врача.
// Модель сохраняется целиком (replace-all): инкрементальные патчи
// потребовали бы отдельного алгоритма сверки без какой-либо выгоды.
type UseCase struct {
	availabilityRepo AvailabilityRepository
	staffClient      StaffServiceClient
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	staffClient StaffServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		staffClient:      staffClient,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute выполняет use case сохранения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SaveAvailability: practitioner=%d, timezone=%q, slots=%d",
		req.PractitionerID, req.Timezone, len(req.Slots))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SaveAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем врача из справочника - нужна организация и, возможно,
	// определенная зона из профиля
	practitioner, err := uc.staffClient.GetPractitioner(ctx, req.PractitionerID)
	if err != nil {
		if errors.Is(err, staffClient.ErrPractitionerNotFound) {
			uc.logger.Warn("SaveAvailability: practitioner id=%d not found", req.PractitionerID)
			return nil, ErrPractitionerNotFound
		}
		uc.logger.Error("SaveAvailability: failed to get practitioner id=%d: %v", req.PractitionerID, err)
		return nil, fmt.Errorf("%w: failed to get practitioner: %v", ErrInternal, err)
	}

	// 3. Зона модели: явная из запроса или определенная зона из профиля врача
	tz := req.Timezone
	if tz == "" {
		tz = practitioner.DetectedTimezone
		uc.logger.Info("SaveAvailability: practitioner=%d using detected timezone %q",
			req.PractitionerID, tz)
	}

	// Нераспознанная зона - фатальная ошибка конфигурации: молчаливый
	// fallback исказил бы все последующие проверки доступности
	if _, err := timezone.Resolve(tz); err != nil {
		uc.logger.Warn("SaveAvailability: unresolvable timezone %q for practitioner=%d",
			tz, req.PractitionerID)
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, tz)
	}

	slots := make([]domain.AvailabilitySlot, 0, len(req.Slots))
	for _, s := range req.Slots {
		slots = append(slots, domain.AvailabilitySlot{
			DayOfWeek: s.DayOfWeek,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}

	model := &domain.AvailabilityModel{
		UserID:         req.PractitionerID,
		OrganizationID: practitioner.OrganizationID,
		Timezone:       tz,
		Slots:          slots,
	}

	// 4. Replace-all сохранение в одной транзакции: удаление старых слотов
	// и вставка новых не должны быть видны по отдельности
	var saved *domain.AvailabilityModel
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var txErr error
		saved, txErr = uc.availabilityRepo.Upsert(txCtx, model)
		if txErr != nil {
			uc.logger.Error("SaveAvailability: failed to upsert model: %v", txErr)
			return fmt.Errorf("%w: failed to upsert model: %v", ErrInternal, txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("SaveAvailability: saved model id=%d for practitioner=%d with %d slots",
		saved.ID, req.PractitionerID, len(saved.Slots))

	responseSlots := make([]ResponseSlot, 0, len(saved.Slots))
	for _, s := range saved.Slots {
		responseSlots = append(responseSlots, ResponseSlot{
			ID:        s.ID,
			DayOfWeek: s.DayOfWeek,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}

	return &Response{
		ID:             saved.ID,
		PractitionerID: saved.UserID,
		OrganizationID: saved.OrganizationID,
		Timezone:       saved.Timezone,
		Slots:          responseSlots,
		CreatedAt:      saved.CreatedAt,
		UpdatedAt:      saved.UpdatedAt,
	}, nil
}
