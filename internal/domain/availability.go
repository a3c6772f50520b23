package domain

import (
	"time"

	"github.com/m04kA/PMC-SchedulingService/pkg/types"
)

// AvailabilitySlot is one recurring weekly working-hours range.
// DayOfWeek is 1-7 (1 = Monday), StartTime/EndTime are zone-naive wall-clock
// times anchored to the owning model's timezone.
type AvailabilitySlot struct {
	ID        int64
	DayOfWeek int
	StartTime types.TimeString
	EndTime   types.TimeString
}

// AvailabilityModel is the weekly recurring availability template of one
// practitioner. There is at most one model per practitioner; saves replace
// the whole slot set.
type AvailabilityModel struct {
	ID             int64
	UserID         int64 // practitioner user id
	OrganizationID int64
	Timezone       string // IANA identifier, e.g. "America/New_York"
	Slots          []AvailabilitySlot
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SlotsForDay returns the recurring ranges configured for the given
// day of week (1-7, Monday=1). Days with no configured availability
// yield an empty slice and are treated as fully unavailable.
func (m *AvailabilityModel) SlotsForDay(dayOfWeek int) []AvailabilitySlot {
	slots := make([]AvailabilitySlot, 0, len(m.Slots))
	for _, s := range m.Slots {
		if s.DayOfWeek == dayOfWeek {
			slots = append(slots, s)
		}
	}
	return slots
}

// BlockedSlot is a one-off exclusion window (vacation, hold) overriding
// recurring availability. The bounds are concrete instants.
type BlockedSlot struct {
	ID             int64
	PractitionerID int64
	StartTime      time.Time
	EndTime        time.Time
	Reason         *string
	CreatedAt      time.Time
}

// Range returns the blocked interval as a half-open TimeRange
func (b *BlockedSlot) Range() TimeRange {
	return TimeRange{Start: b.StartTime, End: b.EndTime}
}

// ISOWeekday returns the day of week of t in 1-7 numbering (1 = Monday).
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday()) // Sunday = 0
	if wd == 0 {
		return 7
	}
	return wd
}
