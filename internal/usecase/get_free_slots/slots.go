package get_free_slots

import (
	"time"

	"github.com/m04kA/PMC-SchedulingService/internal/domain"
	"github.com/m04kA/PMC-SchedulingService/pkg/timezone"
)

// recurringRangesForDate строит конкретные интервалы недельного шаблона
// для указанного календарного дня в зоне врача. HH:MM-значения шаблона
// привязываются к дате в этой зоне: на датах перехода DST несуществующее
// локальное время разрешается в момент после "прыжка", двойное - в раннее
// вхождение.
func recurringRangesForDate(model *domain.AvailabilityModel, date time.Time, loc *time.Location) ([]domain.TimeRange, error) {
	day := domain.ISOWeekday(date.In(loc))
	slots := model.SlotsForDay(day)

	ranges := make([]domain.TimeRange, 0, len(slots))
	for _, slot := range slots {
		start, err := timezone.CombineDateAndTime(date, slot.StartTime, loc)
		if err != nil {
			return nil, err
		}
		end, err := timezone.CombineDateAndTime(date, slot.EndTime, loc)
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

// exclusionRanges собирает блокировки и активные консультации в одно
// множество исключений в зоне врача
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
