package check_availability

import (
	"time"

	"github.com/m04kA/PMC-SchedulingService/internal/domain"
	"github.com/m04kA/PMC-SchedulingService/pkg/timezone"
)

// recurringRangesForDate строит конкретные интервалы недельного шаблона
// для календарного дня, содержащего anchor (в зоне врача). Шаблонные
// HH:MM-значения привязываются к дате именно в зоне врача - на датах
// перехода DST это дает разрешение из базы зон (после "прыжка" вперед,
// раннее вхождение при двойном часе), а не ошибку.
func recurringRangesForDate(model *domain.AvailabilityModel, anchor time.Time, loc *time.Location) ([]domain.TimeRange, error) {
	day := domain.ISOWeekday(anchor.In(loc))
	slots := model.SlotsForDay(day)

	ranges := make([]domain.TimeRange, 0, len(slots))
	for _, slot := range slots {
		start, err := timezone.CombineDateAndTime(anchor, slot.StartTime, loc)
		if err != nil {
			return nil, err
		}
		end, err := timezone.CombineDateAndTime(anchor, slot.EndTime, loc)
		if err != nil {
			return nil, err
		}
		r := domain.TimeRange{Start: start, End: end}
		if r.IsValid() {
			ranges = append(ranges, r)
		}
	}

	return ranges, nil
}

// exclusionRanges собирает интервалы блокировок и активных консультаций
// в одно множество исключений, приведенное к зоне врача
func exclusionRanges(blocked []*domain.BlockedSlot, consultations []*domain.Consultation, loc *time.Location) []domain.TimeRange {
	ranges := make([]domain.TimeRange, 0, len(blocked)+len(consultations))
	for _, b := range blocked {
		ranges = append(ranges, domain.TimeRange{
			Start: b.StartTime.In(loc),
			End:   b.EndTime.In(loc),
		})
	}
	for _, c := range consultations {
		ranges = append(ranges, domain.TimeRange{
			Start: c.StartTime.In(loc),
			End:   c.EndTime.In(loc),
		})
	}
	return ranges
}
