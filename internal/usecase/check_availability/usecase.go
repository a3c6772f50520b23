package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PMC-SchedulingService/internal/domain"
	availabilityRepo "github.com/m04kA/PMC-SchedulingService/internal/infra/storage/availability"
	"github.com/m04kA/PMC-SchedulingService/pkg/timezone"
)

// UseCase use case проверки доступности врача на интервале-кандидате.
// Чистая функция от входа и текущего содержимого трех read-only хранилищ:
// результат нигде не кэшируется, параллельные проверки не координируются.
type UseCase struct {
	availabilityRepo AvailabilityRepository
	blockedSlotRepo  BlockedSlotRepository
	consultationRepo ConsultationRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	blockedSlotRepo BlockedSlotRepository,
	consultationRepo ConsultationRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		blockedSlotRepo:  blockedSlotRepo,
		consultationRepo: consultationRepo,
		logger:           logger,
	}
}

// Execute выполняет проверку доступности интервала [start, end).
//
// Интервал доступен, если он целиком лежит внутри хотя бы одного
// повторяющегося диапазона недельного шаблона на этот день И не
// пересекается ни с одной блокировкой или активной консультацией врача.
// Все сравнения выполняются в домашней зоне врача.
//
// Отсутствие модели доступности - не ошибка: врач без настроенного
// расписания всегда недоступен.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: practitioner=%d, start=%s, end=%s, callerZone=%s",
		req.PractitionerID, req.Start.Format(domain.DateFormat+" "+domain.TimeFormat),
		req.End.Format(domain.DateFormat+" "+domain.TimeFormat), req.CallerZone)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидируем зону вызывающей стороны. Моменты уже абсолютные,
	// но нераспознанная зона - ошибка конфигурации, о которой нужно
	// сказать громко, а не молча продолжить.
	callerLoc, err := timezone.Resolve(req.CallerZone)
	if err != nil {
		uc.logger.Warn("CheckAvailability: unresolvable caller zone %q", req.CallerZone)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimezone, err)
	}
	candStart := req.Start.In(callerLoc)
	candEnd := req.End.In(callerLoc)

	// 3. Получаем модель доступности врача
	model, err := uc.availabilityRepo.GetByPractitioner(ctx, req.PractitionerID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrModelNotFound) {
			// Нет настроенного расписания = полностью недоступен, без ошибки
			uc.logger.Info("CheckAvailability: practitioner=%d has no availability model", req.PractitionerID)
			return &Response{Available: false}, nil
		}
		uc.logger.Error("CheckAvailability: failed to get availability model for practitioner=%d: %v",
			req.PractitionerID, err)
		return nil, fmt.Errorf("%w: failed to get availability model: %v", ErrInternal, err)
	}

	// 4. Разрешаем домашнюю зону врача - все дальнейшие сравнения в ней
	loc, err := timezone.Resolve(model.Timezone)
	if err != nil {
		uc.logger.Error("CheckAvailability: practitioner=%d has unresolvable timezone %q",
			req.PractitionerID, model.Timezone)
		return nil, fmt.Errorf("%w: practitioner timezone %q", ErrInvalidTimezone, model.Timezone)
	}

	candidate := domain.TimeRange{Start: candStart.In(loc), End: candEnd.In(loc)}

	// 5. Интервал должен целиком лежать внутри повторяющегося диапазона
	recurring, err := recurringRangesForDate(model, candidate.Start, loc)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to build recurring ranges: %v", err)
		return nil, fmt.Errorf("%w: failed to build recurring ranges: %v", ErrInternal, err)
	}

	if !domain.ContainedInAny(recurring, candidate) {
		uc.logger.Info("CheckAvailability: practitioner=%d candidate outside recurring availability", req.PractitionerID)
		return &Response{Available: false}, nil
	}

	// 6. Получаем исключения в границах оцениваемого дня
	windowStart, windowEnd := timezone.DayBounds(candidate.Start, loc)
	window := domain.TimeRange{Start: windowStart, End: windowEnd}

	blocked, err := uc.blockedSlotRepo.GetOverlapping(ctx, req.PractitionerID, window)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get blocked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked slots: %v", ErrInternal, err)
	}

	consultations, err := uc.consultationRepo.GetActiveOverlapping(ctx, req.PractitionerID, window)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get consultations: %v", err)
		return nil, fmt.Errorf("%w: failed to get consultations: %v", ErrInternal, err)
	}

	// 7. Полуинтервальная проверка пересечения [start, end):
	// встык-интервалы не конфликтуют, back-to-back записи бронируются
	if domain.OverlapsAny(exclusionRanges(blocked, consultations, loc), candidate) {
		uc.logger.Info("CheckAvailability: practitioner=%d candidate overlaps exclusion", req.PractitionerID)
		return &Response{Available: false}, nil
	}

	uc.logger.Info("CheckAvailability: practitioner=%d candidate is available", req.PractitionerID)
	return &Response{Available: true}, nil
}
