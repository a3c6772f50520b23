package consultations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PMC-SchedulingService/internal/domain"
	consultationRepo "github.com/m04kA/PMC-SchedulingService/internal/infra/storage/consultation"
	"github.com/m04kA/PMC-SchedulingService/internal/service/consultations/models"
)

// Service сервис для работы с консультациями
type Service struct {
	consultationRepo ConsultationRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса консультаций
func NewService(
	consultationRepo ConsultationRepository,
	logger Logger,
) *Service {
	return &Service{
		consultationRepo: consultationRepo,
		logger:           logger,
	}
}

// GetByID получает консультацию по ID
// Проверяет права доступа - консультацию видят только её пациент и её врач
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.ConsultationResponse, error) {
	s.logger.Info("GetByID: fetching consultation id=%d for user=%d", id, userID)

	consultation, err := s.consultationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, consultationRepo.ErrConsultationNotFound) {
			s.logger.Warn("GetByID: consultation id=%d not found", id)
			return nil, ErrConsultationNotFound
		}
		s.logger.Error("GetByID: repository error for consultation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if consultation.PatientID != userID && consultation.PractitionerID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to consultation id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched consultation id=%d", id)
	return models.FromDomainConsultation(consultation), nil
}

// GetPractitionerConsultations получает консультации врача с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению неактивных консультаций
// Доступно только самому врачу
//
// Примеры использования:
// - Все активные консультации: указать только PractitionerID
// - Консультации за период: указать From и To
// - Только завершённые: указать Status = "completed"
// - Включая отменённые и no-show: IncludeInactive = true
func (s *Service) GetPractitionerConsultations(ctx context.Context, req *models.GetPractitionerConsultationsRequest) (*models.ConsultationListResponse, error) {
	// Логируем запрос с деталями фильтрации
	logMsg := fmt.Sprintf("GetPractitionerConsultations: fetching consultations for practitioner=%d, user=%d", req.PractitionerID, req.UserID)
	if req.From != nil && req.To != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	// Расписание врача видит только он сам
	if req.UserID != req.PractitionerID {
		s.logger.Warn("GetPractitionerConsultations: access denied for user=%d to practitioner=%d schedule", req.UserID, req.PractitionerID)
		return nil, ErrAccessDenied
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetPractitionerConsultations: invalid filter for practitioner=%d: %v", req.PractitionerID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	// Получаем консультации с фильтрацией
	consultations, err := s.consultationRepo.GetByPractitionerWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetPractitionerConsultations: repository error for practitioner=%d: %v", req.PractitionerID, err)
		return nil, fmt.Errorf("%w: GetPractitionerConsultations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetPractitionerConsultations: successfully fetched %d consultations for practitioner=%d", len(consultations), req.PractitionerID)
	return models.FromDomainConsultationList(consultations), nil
}

// Cancel отменяет консультацию
// Пациент может отменить только свою консультацию (cancelled_by_patient)
// Врач может отменить любую свою консультацию (cancelled_by_practitioner)
func (s *Service) Cancel(ctx context.Context, consultationID int64, req *models.CancelConsultationRequest) error {
	s.logger.Info("Cancel: cancelling consultation id=%d by user=%d", consultationID, req.UserID)

	// Получаем консультацию
	consultation, err := s.consultationRepo.GetByID(ctx, consultationID)
	if err != nil {
		if errors.Is(err, consultationRepo.ErrConsultationNotFound) {
			s.logger.Warn("Cancel: consultation id=%d not found", consultationID)
			return ErrConsultationNotFound
		}
		s.logger.Error("Cancel: repository error for consultation id=%d: %v", consultationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить консультацию
	if !consultation.CanBeCancelled() {
		s.logger.Warn("Cancel: consultation id=%d cannot be cancelled, status=%s", consultationID, consultation.Status)
		return ErrCannotCancel
	}

	// Определяем статус отмены в зависимости от роли пользователя
	var cancelStatus domain.ConsultationStatus

	switch req.UserID {
	case consultation.PatientID:
		cancelStatus = domain.StatusCancelledByPatient
	case consultation.PractitionerID:
		cancelStatus = domain.StatusCancelledByPractitioner
	default:
		s.logger.Warn("Cancel: access denied for user=%d to cancel consultation id=%d", req.UserID, consultationID)
		return ErrAccessDenied
	}

	// Отменяем консультацию
	if err := s.consultationRepo.Cancel(ctx, consultationID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, consultationRepo.ErrConsultationNotFound) {
			s.logger.Warn("Cancel: consultation id=%d not found during cancellation", consultationID)
			return ErrConsultationNotFound
		}
		s.logger.Error("Cancel: repository error for consultation id=%d: %v", consultationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled consultation id=%d with status=%s", consultationID, cancelStatus)
	return nil
}
