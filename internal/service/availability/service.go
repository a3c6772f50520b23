package availability

import (
	"context"
	"errors"
	"fmt"

	availabilityRepo "github.com/m04kA/PMC-SchedulingService/internal/infra/storage/availability"
	"github.com/m04kA/PMC-SchedulingService/internal/service/availability/models"
)

// Service сервис для чтения недельного расписания врача
type Service struct {
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(availabilityRepo AvailabilityRepository, logger Logger) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// GetByPractitioner получает недельное расписание врача
// Отсутствие расписания - это нормальное состояние (врач полностью недоступен),
// для явного чтения модели оно транслируется в ErrModelNotFound
func (s *Service) GetByPractitioner(ctx context.Context, practitionerID int64) (*models.AvailabilityModelResponse, error) {
	s.logger.Info("GetByPractitioner: fetching availability model for practitioner=%d", practitionerID)

	model, err := s.availabilityRepo.GetByPractitioner(ctx, practitionerID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrModelNotFound) {
			s.logger.Info("GetByPractitioner: no availability model for practitioner=%d", practitionerID)
			return nil, ErrModelNotFound
		}
		s.logger.Error("GetByPractitioner: repository error for practitioner=%d: %v", practitionerID, err)
		return nil, fmt.Errorf("%w: GetByPractitioner - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByPractitioner: successfully fetched availability model for practitioner=%d with %d slots",
		practitionerID, len(model.Slots))
	return models.FromDomainAvailabilityModel(model), nil
}
