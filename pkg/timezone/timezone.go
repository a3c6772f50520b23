// Package timezone приводит все моменты времени к одной референсной зоне
// перед сравнением. Все проверки доступности врача выполняются в его
// домашней зоне, иначе сравнения ломаются на переходах DST.
package timezone

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/PMC-SchedulingService/pkg/types"
)

// ErrUnknownTimezone возвращается при нераспознанном идентификаторе зоны.
// Это фатальная ошибка конфигурации: молчаливый fallback на UTC исказил бы
// все последующие сравнения.
var ErrUnknownTimezone = errors.New("timezone: unknown timezone identifier")

// Resolve resolves an IANA zone identifier into a *time.Location.
// Unlike time.LoadLocation it never falls back to a default zone.
func Resolve(name string) (*time.Location, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty identifier", ErrUnknownTimezone)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimezone, name)
	}
	return loc, nil
}

// ToZone converts an instant into the named target zone. The instant itself
// is unchanged, only its representation moves.
func ToZone(t time.Time, target string) (time.Time, error) {
	loc, err := Resolve(target)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

// CombineDateAndTime builds a concrete instant from a calendar date and a
// wall-clock time of day, interpreted in loc. Recurring availability slots
// are zone-naive templates anchored to the practitioner's configured zone,
// so the date+time pair must be resolved in that zone, not the caller's.
//
// DST edge dates never fail: for a nonexistent local time (spring-forward
// gap) the zone database resolution produces the post-gap instant, for an
// ambiguous one (fall-back fold) the earlier occurrence. Both come from
// time.Date directly.
func CombineDateAndTime(date time.Time, wall types.TimeString, loc *time.Location) (time.Time, error) {
	minutes, err := wall.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := date.In(loc).Date()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, loc), nil
}

// DayBounds returns the half-open [midnight, next midnight) window of the
// calendar day containing t in loc. Used to bound store queries to one day.
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	y, m, d := t.In(loc).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}
