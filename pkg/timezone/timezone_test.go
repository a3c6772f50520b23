package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PMC-SchedulingService/pkg/types"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		zone    string
		wantErr bool
	}{
		{name: "valid IANA zone", zone: "America/New_York"},
		{name: "UTC", zone: "UTC"},
		{name: "empty is an error, not a UTC fallback", zone: "", wantErr: true},
		{name: "garbage is an error, not a UTC fallback", zone: "Mars/Olympus_Mons", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := Resolve(tt.zone)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownTimezone)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.zone, loc.String())
		})
	}
}

func TestToZone_RoundTrip(t *testing.T) {
	instant := time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)

	inNY, err := ToZone(instant, "America/New_York")
	require.NoError(t, err)

	// Момент времени не меняется, меняется только представление
	assert.True(t, instant.Equal(inNY))
	assert.Equal(t, 10, inNY.Hour()) // EST = UTC-5

	backInUTC, err := ToZone(inNY, "UTC")
	require.NoError(t, err)
	assert.True(t, instant.Equal(backInUTC))

	_, err = ToZone(instant, "Not/AZone")
	assert.ErrorIs(t, err, ErrUnknownTimezone)
}

func TestCombineDateAndTime(t *testing.T) {
	ny, err := Resolve("America/New_York")
	require.NoError(t, err)

	wall, err := types.NewTimeStringFromString("09:00")
	require.NoError(t, err)

	// 2026-03-02 - обычный понедельник
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, ny)
	got, err := CombineDateAndTime(date, wall, ny)
	require.NoError(t, err)

	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 0, got.Minute())
	assert.Equal(t, ny, got.Location())
}

func TestCombineDateAndTime_DSTSpringForwardGap(t *testing.T) {
	ny, err := Resolve("America/New_York")
	require.NoError(t, err)

	// 2026-03-08: в 02:00 местного времени часы прыгают на 03:00,
	// локального времени 02:30 в этот день не существует
	wall, err := types.NewTimeStringFromString("02:30")
	require.NoError(t, err)

	date := time.Date(2026, 3, 8, 0, 0, 0, 0, ny)
	got, err := CombineDateAndTime(date, wall, ny)
	require.NoError(t, err)

	// zone database разрешает несуществующее время в момент после перехода
	assert.Equal(t, 3, got.Hour())
	assert.Equal(t, 30, got.Minute())
}

func TestCombineDateAndTime_DSTFallBackFold(t *testing.T) {
	ny, err := Resolve("America/New_York")
	require.NoError(t, err)

	// 2026-11-01: 01:30 местного времени наступает дважды
	wall, err := types.NewTimeStringFromString("01:30")
	require.NoError(t, err)

	date := time.Date(2026, 11, 1, 0, 0, 0, 0, ny)
	got, err := CombineDateAndTime(date, wall, ny)
	require.NoError(t, err)

	// Берется раннее вхождение (EDT, UTC-4)
	assert.Equal(t, 1, got.Hour())
	_, offset := got.Zone()
	assert.Equal(t, -4*60*60, offset)
}

func TestDayBounds(t *testing.T) {
	ny, err := Resolve("America/New_York")
	require.NoError(t, err)

	// Момент внутри дня в зоне врача
	instant := time.Date(2026, 3, 2, 23, 30, 0, 0, time.UTC) // 18:30 EST

	start, end := DayBounds(instant, ny)

	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, ny), start)
	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, ny), end)

	// Полуинтервал: день перехода на летнее время длится 23 часа
	dstDay := time.Date(2026, 3, 8, 12, 0, 0, 0, ny)
	dstStart, dstEnd := DayBounds(dstDay, ny)
	assert.Equal(t, 23*time.Hour, dstEnd.Sub(dstStart))
}
