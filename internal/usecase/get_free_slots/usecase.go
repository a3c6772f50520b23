package get_free_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/PMC-SchedulingService/internal/domain"
	availabilityRepo "github.com/m04kA/PMC-SchedulingService/internal/infra/storage/availability"
	"github.com/m04kA/PMC-SchedulingService/pkg/timezone"
)

// UseCase use case перечисления свободных интервалов врача на день:
// из повторяющихся диапазонов недельного шаблона вычитается множество
// исключений (блокировки и активные консультации)
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

// Execute возвращает свободные интервалы врача на календарный день,
// отсортированные по началу. Частично перекрытый диапазон расщепляется
// на два свободных подынтервала, целиком поглощенный - выпадает,
// нулевая длина отбрасывается. Повторный вызов при неизменных данных
// возвращает тот же результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetFreeSlots: practitioner=%d, date=%s",
		req.PractitionerID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetFreeSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем модель доступности врача
	model, err := uc.availabilityRepo.GetByPractitioner(ctx, req.PractitionerID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrModelNotFound) {
			// Нет настроенного расписания - пустой список, без ошибки
			uc.logger.Info("GetFreeSlots: practitioner=%d has no availability model", req.PractitionerID)
			return &Response{
				PractitionerID: req.PractitionerID,
				Date:           req.Date,
				Slots:          []FreeSlot{},
			}, nil
		}
		uc.logger.Error("GetFreeSlots: failed to get availability model for practitioner=%d: %v",
			req.PractitionerID, err)
		return nil, fmt.Errorf("%w: failed to get availability model: %v", ErrInternal, err)
	}

	// 3. Разрешаем домашнюю зону врача
	loc, err := timezone.Resolve(model.Timezone)
	if err != nil {
		uc.logger.Error("GetFreeSlots: practitioner=%d has unresolvable timezone %q",
			req.PractitionerID, model.Timezone)
		return nil, fmt.Errorf("%w: practitioner timezone %q", ErrInvalidTimezone, model.Timezone)
	}

	// 4. Дата запроса - календарный день без зоны. Привязываем её к зоне
	// врача: полуночный UTC-момент в зонах позади UTC - это ещё
	// предыдущий день, и без переякоривания перечислялся бы он.
	y, m, d := req.Date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, loc)

	// 5. Конкретные диапазоны недельного шаблона на этот день
	recurring, err := recurringRangesForDate(model, day, loc)
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to build recurring ranges: %v", err)
		return nil, fmt.Errorf("%w: failed to build recurring ranges: %v", ErrInternal, err)
	}

	if len(recurring) == 0 {
		uc.logger.Info("GetFreeSlots: practitioner=%d has no recurring availability on %s",
			req.PractitionerID, req.Date.Format(domain.DateFormat))
		return &Response{
			PractitionerID: req.PractitionerID,
			Date:           req.Date,
			Timezone:       model.Timezone,
			Slots:          []FreeSlot{},
		}, nil
	}

	// 6. Исключения в границах дня
	windowStart, windowEnd := timezone.DayBounds(day, loc)
	window := domain.TimeRange{Start: windowStart, End: windowEnd}

	blocked, err := uc.blockedSlotRepo.GetOverlapping(ctx, req.PractitionerID, window)
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to get blocked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked slots: %v", ErrInternal, err)
	}

	consultations, err := uc.consultationRepo.GetActiveOverlapping(ctx, req.PractitionerID, window)
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to get consultations: %v", err)
		return nil, fmt.Errorf("%w: failed to get consultations: %v", ErrInternal, err)
	}

	// 7. Вычитаем исключения из повторяющихся диапазонов
	free := domain.SubtractAll(recurring, exclusionRanges(blocked, consultations, loc))

	slots := make([]FreeSlot, 0, len(free))
	for _, r := range free {
		slots = append(slots, FreeSlot{Start: r.Start, End: r.End})
	}

	uc.logger.Info("GetFreeSlots: practitioner=%d, date=%s, free slots=%d",
		req.PractitionerID, req.Date.Format(domain.DateFormat), len(slots))

	return &Response{
		PractitionerID: req.PractitionerID,
		Date:           req.Date,
		Timezone:       model.Timezone,
		Slots:          slots,
	}, nil
}
