package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// mkRange строит интервал в рамках одного дня по часам и минутам
func mkRange(t *testing.T, startH, startM, endH, endM int) TimeRange {
	t.Helper()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return TimeRange{
		Start: day.Add(time.Duration(startH)*time.Hour + time.Duration(startM)*time.Minute),
		End:   day.Add(time.Duration(endH)*time.Hour + time.Duration(endM)*time.Minute),
	}
}

func TestTimeRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    TimeRange
		b    TimeRange
		want bool
	}{
		{
			name: "partial overlap",
			a:    mkRange(t, 10, 0, 11, 0),
			b:    mkRange(t, 10, 30, 11, 30),
			want: true,
		},
		{
			name: "containment",
			a:    mkRange(t, 9, 0, 17, 0),
			b:    mkRange(t, 10, 0, 11, 0),
			want: true,
		},
		{
			name: "identical",
			a:    mkRange(t, 10, 0, 10, 30),
			b:    mkRange(t, 10, 0, 10, 30),
			want: true,
		},
		{
			name: "back-to-back does not overlap",
			a:    mkRange(t, 10, 0, 10, 30),
			b:    mkRange(t, 10, 30, 11, 0),
			want: false,
		},
		{
			name: "disjoint",
			a:    mkRange(t, 9, 0, 10, 0),
			b:    mkRange(t, 14, 0, 15, 0),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeRange_Contains(t *testing.T) {
	outer := mkRange(t, 9, 0, 17, 0)

	assert.True(t, outer.Contains(mkRange(t, 10, 0, 11, 0)))
	assert.True(t, outer.Contains(outer))
	// Границы включаются: [9:00,10:00) внутри [9:00,17:00)
	assert.True(t, outer.Contains(mkRange(t, 9, 0, 10, 0)))
	assert.True(t, outer.Contains(mkRange(t, 16, 0, 17, 0)))

	assert.False(t, outer.Contains(mkRange(t, 8, 30, 10, 0)))
	assert.False(t, outer.Contains(mkRange(t, 16, 30, 17, 30)))
	assert.False(t, outer.Contains(mkRange(t, 18, 0, 19, 0)))
}

func TestTimeRange_Subtract(t *testing.T) {
	base := mkRange(t, 9, 0, 17, 0)

	t.Run("exclusion in the middle splits into two", func(t *testing.T) {
		got := base.Subtract(mkRange(t, 10, 0, 10, 30))
		assert.Equal(t, []TimeRange{
			mkRange(t, 9, 0, 10, 0),
			mkRange(t, 10, 30, 17, 0),
		}, got)
	})

	t.Run("exclusion at the start trims the head", func(t *testing.T) {
		got := base.Subtract(mkRange(t, 9, 0, 10, 0))
		assert.Equal(t, []TimeRange{mkRange(t, 10, 0, 17, 0)}, got)
	})

	t.Run("full cover removes the range", func(t *testing.T) {
		got := base.Subtract(mkRange(t, 8, 0, 18, 0))
		assert.Empty(t, got)
	})

	t.Run("no overlap keeps the range", func(t *testing.T) {
		got := base.Subtract(mkRange(t, 18, 0, 19, 0))
		assert.Equal(t, []TimeRange{base}, got)
	})
}

func TestSubtractAll(t *testing.T) {
	base := []TimeRange{mkRange(t, 9, 0, 17, 0)}
	exclusions := []TimeRange{
		mkRange(t, 12, 0, 13, 0),
		mkRange(t, 10, 0, 10, 30),
	}

	got := SubtractAll(base, exclusions)

	assert.Equal(t, []TimeRange{
		mkRange(t, 9, 0, 10, 0),
		mkRange(t, 10, 30, 12, 0),
		mkRange(t, 13, 0, 17, 0),
	}, got)

	// Идемпотентность: свободные интервалы не пересекаются с исключениями
	for _, free := range got {
		for _, excl := range exclusions {
			assert.False(t, free.Overlaps(excl))
		}
	}
	assert.Equal(t, got, SubtractAll(got, exclusions))
}

func TestContainedInAny(t *testing.T) {
	ranges := []TimeRange{
		mkRange(t, 9, 0, 12, 0),
		mkRange(t, 14, 0, 17, 0),
	}

	assert.True(t, ContainedInAny(ranges, mkRange(t, 10, 0, 11, 0)))
	assert.True(t, ContainedInAny(ranges, mkRange(t, 14, 0, 17, 0)))
	// Интервал через обеденный разрыв не лежит целиком ни в одном диапазоне
	assert.False(t, ContainedInAny(ranges, mkRange(t, 11, 0, 15, 0)))
	assert.False(t, ContainedInAny(ranges, mkRange(t, 12, 0, 13, 0)))
	assert.False(t, ContainedInAny(nil, mkRange(t, 10, 0, 11, 0)))
}

func TestOverlapsAny(t *testing.T) {
	ranges := []TimeRange{
		mkRange(t, 10, 0, 10, 30),
		mkRange(t, 15, 0, 16, 0),
	}

	assert.True(t, OverlapsAny(ranges, mkRange(t, 10, 15, 10, 45)))
	// Встык - не пересечение
	assert.False(t, OverlapsAny(ranges, mkRange(t, 10, 30, 11, 0)))
	assert.False(t, OverlapsAny(ranges, mkRange(t, 12, 0, 13, 0)))
	assert.False(t, OverlapsAny(nil, mkRange(t, 12, 0, 13, 0)))
}

func TestISOWeekday(t *testing.T) {
	// 2026-03-02 - понедельник
	monday := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, ISOWeekday(monday))

	sunday := time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 7, ISOWeekday(sunday))

	saturday := time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 6, ISOWeekday(saturday))
}
