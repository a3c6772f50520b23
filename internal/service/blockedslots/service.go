package blockedslots

import (
	"context"
	"errors"
	"fmt"

	blockedSlotRepo "github.com/m04kA/PMC-SchedulingService/internal/infra/storage/blockedslot"
	"github.com/m04kA/PMC-SchedulingService/internal/service/blockedslots/models"
)

// Service сервис для работы с блокировками времени врача
type Service struct {
	blockedSlotRepo BlockedSlotRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(blockedSlotRepo BlockedSlotRepository, logger Logger) *Service {
	return &Service{
		blockedSlotRepo: blockedSlotRepo,
		logger:          logger,
	}
}

// Create создает блокировку времени
// Врач может блокировать только своё собственное время
func (s *Service) Create(ctx context.Context, req *models.CreateBlockedSlotRequest) (*models.BlockedSlotResponse, error) {
	s.logger.Info("Create: blocking time for practitioner=%d from %s to %s",
		req.PractitionerID, req.Start.Format("2006-01-02 15:04"), req.End.Format("2006-01-02 15:04"))

	if req.UserID != req.PractitionerID {
		s.logger.Warn("Create: access denied for user=%d to block time of practitioner=%d", req.UserID, req.PractitionerID)
		return nil, ErrAccessDenied
	}

	if !req.End.After(req.Start) {
		s.logger.Warn("Create: invalid interval for practitioner=%d: end is not after start", req.PractitionerID)
		return nil, fmt.Errorf("%w: end must be after start", ErrInvalidInput)
	}

	slot, err := s.blockedSlotRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error for practitioner=%d: %v", req.PractitionerID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created blocked slot id=%d for practitioner=%d", slot.ID, req.PractitionerID)
	return models.FromDomainBlockedSlot(slot), nil
}

// GetByPractitioner получает блокировки врача
// Опционально фильтрует по нижней границе периода
func (s *Service) GetByPractitioner(ctx context.Context, req *models.GetBlockedSlotsRequest) (*models.BlockedSlotListResponse, error) {
	s.logger.Info("GetByPractitioner: fetching blocked slots for practitioner=%d", req.PractitionerID)

	if req.UserID != req.PractitionerID {
		s.logger.Warn("GetByPractitioner: access denied for user=%d to practitioner=%d blocked slots", req.UserID, req.PractitionerID)
		return nil, ErrAccessDenied
	}

	slots, err := s.blockedSlotRepo.GetByPractitioner(ctx, req.PractitionerID, req.From)
	if err != nil {
		s.logger.Error("GetByPractitioner: repository error for practitioner=%d: %v", req.PractitionerID, err)
		return nil, fmt.Errorf("%w: GetByPractitioner - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByPractitioner: successfully fetched %d blocked slots for practitioner=%d", len(slots), req.PractitionerID)
	return models.FromDomainBlockedSlotList(slots), nil
}

// Delete удаляет блокировку времени
// Врач может удалять только свои блокировки
func (s *Service) Delete(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("Delete: deleting blocked slot id=%d by user=%d", id, userID)

	slot, err := s.blockedSlotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, blockedSlotRepo.ErrBlockedSlotNotFound) {
			s.logger.Warn("Delete: blocked slot id=%d not found", id)
			return ErrBlockedSlotNotFound
		}
		s.logger.Error("Delete: repository error for blocked slot id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if slot.PractitionerID != userID {
		s.logger.Warn("Delete: access denied for user=%d to delete blocked slot id=%d", userID, id)
		return ErrAccessDenied
	}

	if err := s.blockedSlotRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockedSlotRepo.ErrBlockedSlotNotFound) {
			s.logger.Warn("Delete: blocked slot id=%d not found during deletion", id)
			return ErrBlockedSlotNotFound
		}
		s.logger.Error("Delete: repository error for blocked slot id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted blocked slot id=%d", id)
	return nil
}
