package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapvenda/ZV-AgendaService/pkg/types"
)

func TestToInstant_ToWallTime_RoundTrip(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	date := time.Date(2026, 9, 7, 0, 0, 0, 0, loc)
	wall := types.WallTime("10:30")

	instant := ToInstant(date, wall, loc)
	gotDate, gotWall := ToWallTime(instant, loc)

	assert.True(t, gotDate.Equal(date))
	assert.Equal(t, wall, gotWall)
}

func TestToInstant_ReturnsUTC(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	date := time.Date(2026, 9, 7, 0, 0, 0, 0, loc)
	instant := ToInstant(date, types.WallTime("09:00"), loc)

	assert.Equal(t, time.UTC, instant.Location())
	assert.Equal(t, time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC), instant)
}

func TestDayBounds(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	date := time.Date(2026, 9, 7, 15, 45, 0, 0, loc) // время внутри дня игнорируется
	start, end := DayBounds(date, loc)

	assert.Equal(t, time.Date(2026, 9, 7, 3, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 9, 8, 3, 0, 0, 0, time.UTC), end)
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}

func TestDayBounds_DSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 8 марта 2026 - переход на летнее время, день длится 23 часа
	date := time.Date(2026, 3, 8, 0, 0, 0, 0, loc)
	start, end := DayBounds(date, loc)

	assert.Equal(t, 23*time.Hour, end.Sub(start))
}
