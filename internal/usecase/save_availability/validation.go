package save_availability

import (
	"fmt"
	"sort"

	"github.com/m04kA/PMC-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PractitionerID <= 0 {
		return fmt.Errorf("%w: practitionerID must be positive", ErrInvalidInput)
	}

	for _, slot := range req.Slots {
		if slot.DayOfWeek < domain.MinDayOfWeek || slot.DayOfWeek > domain.MaxDayOfWeek {
			return fmt.Errorf("%w: dayOfWeek %d out of range 1-7", ErrInvalidInput, slot.DayOfWeek)
		}

		startMin, err := slot.StartTime.Minutes()
		if err != nil {
			return fmt.Errorf("%w: invalid startTime %q", ErrInvalidInput, slot.StartTime)
		}
		endMin, err := slot.EndTime.Minutes()
		if err != nil {
			return fmt.Errorf("%w: invalid endTime %q", ErrInvalidInput, slot.EndTime)
		}

		if startMin >= endMin {
			return fmt.Errorf("%w: startTime %s must be before endTime %s",
				ErrInvalidInput, slot.StartTime, slot.EndTime)
		}
	}

	return validateNoOverlaps(req.Slots)
}

// validateNoOverlaps проверяет, что диапазоны одного дня не пересекаются.
// Диапазоны встык ("09:00-12:00" и "12:00-17:00") допустимы.
func validateNoOverlaps(slots []SlotInput) error {
	byDay := make(map[int][]SlotInput)
	for _, slot := range slots {
		byDay[slot.DayOfWeek] = append(byDay[slot.DayOfWeek], slot)
	}

	for day, daySlots := range byDay {
		sort.Slice(daySlots, func(i, j int) bool {
			return daySlots[i].StartTime.IsBefore(daySlots[j].StartTime)
		})

		for i := 1; i < len(daySlots); i++ {
			prev, curr := daySlots[i-1], daySlots[i]
			if curr.StartTime.IsBefore(prev.EndTime) {
				return fmt.Errorf("%w: day %d ranges %s-%s and %s-%s",
					ErrOverlappingSlots, day,
					prev.StartTime, prev.EndTime, curr.StartTime, curr.EndTime)
			}
		}
	}

	return nil
}
